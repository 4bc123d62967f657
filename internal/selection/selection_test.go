package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

// buildGrid builds a 14:00–18:00 day of 60-minute slots with the given
// occupied intervals, so tests read in slot indexes:
//
//	0: 14:00–15:00  1: 15:00–16:00  2: 16:00–17:00  3: 17:00–18:00
func buildGrid(t *testing.T, occupied ...schedule.Interval) *schedule.SlotGrid {
	t.Helper()
	day, err := time.Parse("2006-01-02", "2026-09-14")
	require.NoError(t, err)

	grid, err := schedule.BuildGrid(schedule.GridParams{
		Date:          day,
		DayStart:      14 * 60,
		DayEnd:        18 * 60,
		SlotDuration:  60,
		RequiredSlots: 2,
		Occupied:      occupied,
		Now:           day,
	})
	require.NoError(t, err)
	return grid
}

func booked(startMin, endMin int) schedule.Interval {
	return schedule.Interval{StartMinute: startMin, EndMinute: endMin, Kind: schedule.KindBooked}
}

func TestCanSelect(t *testing.T) {
	// Slot 0 is booked, slots 1-3 free.
	grid := buildGrid(t, booked(14*60, 15*60))

	t.Run("run of free slots is admissible", func(t *testing.T) {
		assert.True(t, CanSelect(grid, 1, 2))
	})

	t.Run("run crossing a booked slot is not", func(t *testing.T) {
		assert.False(t, CanSelect(grid, 0, 2))
	})

	t.Run("only the run itself is considered", func(t *testing.T) {
		// Slot 0 being booked must not poison a run that starts after it.
		assert.True(t, CanSelect(grid, 2, 2))
		assert.True(t, CanSelect(grid, 1, 3))
	})

	t.Run("run extending past the grid end", func(t *testing.T) {
		assert.False(t, CanSelect(grid, 3, 2))
		assert.False(t, CanSelect(grid, 2, 3))
	})

	t.Run("shorter runs are never less admissible", func(t *testing.T) {
		for i := 0; i < len(grid.Slots); i++ {
			for n := 2; n <= len(grid.Slots); n++ {
				if CanSelect(grid, i, n) {
					assert.True(t, CanSelect(grid, i, n-1),
						"run (%d,%d) admissible but (%d,%d) not", i, n, i, n-1)
				}
			}
		}
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		assert.False(t, CanSelect(nil, 0, 1))
		assert.False(t, CanSelect(grid, -1, 1))
		assert.False(t, CanSelect(grid, 1, 0))
	})
}

func TestDescribeFailure(t *testing.T) {
	grid := buildGrid(t, booked(16*60, 17*60)) // slot 2 booked

	t.Run("admissible run yields nil", func(t *testing.T) {
		assert.Nil(t, DescribeFailure(grid, 0, 2))
	})

	t.Run("reports the first blocking slot", func(t *testing.T) {
		detail := DescribeFailure(grid, 1, 3)
		require.NotNil(t, detail)
		assert.False(t, detail.InsufficientSlots)
		assert.Equal(t, 2, detail.Index)
		assert.Equal(t, "16:00–17:00", detail.SlotLabel)
		assert.Equal(t, schedule.StatusBooked, detail.Status)
		assert.Contains(t, detail.Message(), "16:00–17:00")
	})

	t.Run("lowest blocking index wins", func(t *testing.T) {
		multi := buildGrid(t, booked(15*60, 16*60), booked(17*60, 18*60)) // slots 1 and 3
		detail := DescribeFailure(multi, 0, 4)
		require.NotNil(t, detail)
		assert.Equal(t, 1, detail.Index)
	})

	t.Run("overrun with free tail reports insufficient slots", func(t *testing.T) {
		free := buildGrid(t)
		detail := DescribeFailure(free, 3, 2)
		require.NotNil(t, detail)
		assert.True(t, detail.InsufficientSlots)
		assert.Contains(t, detail.Message(), "insufficient remaining slots")
	})

	t.Run("blocking slot beats the overrun", func(t *testing.T) {
		// Run overruns the grid AND crosses a booked slot: the in-bounds
		// blocker is the report.
		detail := DescribeFailure(grid, 2, 3)
		require.NotNil(t, detail)
		assert.False(t, detail.InsufficientSlots)
		assert.Equal(t, 2, detail.Index)
	})
}

func TestResolve(t *testing.T) {
	t.Run("resolves the booking window", func(t *testing.T) {
		grid := buildGrid(t)
		start, end, err := Resolve(grid, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "15:00", start)
		assert.Equal(t, "17:00", end)
	})

	t.Run("window length equals requiredSlots times slot duration", func(t *testing.T) {
		grid := buildGrid(t)
		start, end, err := Resolve(grid, 0, 3)
		require.NoError(t, err)
		assert.Equal(t, "14:00", start)
		assert.Equal(t, "17:00", end)
	})

	t.Run("stale selection fails on the fresh grid", func(t *testing.T) {
		// The run at index 1 was admissible on the grid the user browsed;
		// slot 2 got booked before confirmation.
		stale := buildGrid(t)
		require.True(t, CanSelect(stale, 1, 2))

		fresh := buildGrid(t, booked(16*60, 17*60))
		_, _, err := Resolve(fresh, 1, 2)
		assert.ErrorIs(t, err, ErrSelectionNoLongerValid)
	})

	t.Run("inadmissible run never yields a window", func(t *testing.T) {
		grid := buildGrid(t, booked(14*60, 15*60))
		start, end, err := Resolve(grid, 0, 2)
		assert.Error(t, err)
		assert.Empty(t, start)
		assert.Empty(t, end)
	})
}

func TestFindStartIndex(t *testing.T) {
	grid := buildGrid(t)

	assert.Equal(t, 0, FindStartIndex(grid, "14:00"))
	assert.Equal(t, 2, FindStartIndex(grid, "16:00"))
	assert.Equal(t, -1, FindStartIndex(grid, "13:00"))
	assert.Equal(t, -1, FindStartIndex(nil, "14:00"))
}
