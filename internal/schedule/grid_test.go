package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2026-09-14")
	require.NoError(t, err)
	return d
}

func TestBuildGridLayout(t *testing.T) {
	day := testDay(t)

	t.Run("full day of 60-minute slots", func(t *testing.T) {
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      6 * 60,
			DayEnd:        22 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Now:           day, // midnight: nothing is past
		})
		require.NoError(t, err)

		require.Len(t, grid.Slots, 16)
		assert.Equal(t, "06:00", grid.Slots[0].StartTime)
		assert.Equal(t, "07:00", grid.Slots[0].EndTime)
		assert.Equal(t, "21:00", grid.Slots[15].StartTime)
		assert.Equal(t, "22:00", grid.Slots[15].EndTime)

		for i := 1; i < len(grid.Slots); i++ {
			assert.Equal(t, grid.Slots[i-1].EndTime, grid.Slots[i].StartTime,
				"slots must be contiguous")
		}
		for _, s := range grid.Slots {
			assert.Equal(t, StatusAvailable, s.Status)
		}
	})

	t.Run("trailing remainder shorter than a slot is truncated", func(t *testing.T) {
		// 08:00–21:30 with 60-minute slots: the 21:00–21:30 remainder is dropped.
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      8 * 60,
			DayEnd:        21*60 + 30,
			SlotDuration:  60,
			RequiredSlots: 1,
			Now:           day,
		})
		require.NoError(t, err)

		require.Len(t, grid.Slots, 13)
		assert.Equal(t, "21:00", grid.Slots[len(grid.Slots)-1].EndTime)
	})

	t.Run("window shorter than one slot yields empty grid", func(t *testing.T) {
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      9 * 60,
			DayEnd:        9*60 + 30,
			SlotDuration:  60,
			RequiredSlots: 1,
			Now:           day,
		})
		require.NoError(t, err)
		assert.Empty(t, grid.Slots)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		cases := []struct {
			name   string
			params GridParams
		}{
			{"zero slot duration", GridParams{Date: day, DayStart: 360, DayEnd: 1320, SlotDuration: 0, RequiredSlots: 1}},
			{"negative slot duration", GridParams{Date: day, DayStart: 360, DayEnd: 1320, SlotDuration: -30, RequiredSlots: 1}},
			{"end before start", GridParams{Date: day, DayStart: 1320, DayEnd: 360, SlotDuration: 60, RequiredSlots: 1}},
			{"end equals start", GridParams{Date: day, DayStart: 600, DayEnd: 600, SlotDuration: 60, RequiredSlots: 1}},
			{"zero required slots", GridParams{Date: day, DayStart: 360, DayEnd: 1320, SlotDuration: 60, RequiredSlots: 0}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := BuildGrid(tc.params)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			})
		}
	})
}

func TestBuildGridStatuses(t *testing.T) {
	day := testDay(t)

	t.Run("partial overlap makes the slot unavailable", func(t *testing.T) {
		// Booking 09:30–10:30 straddles two slots; both become booked.
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      9 * 60,
			DayEnd:        12 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Occupied: []Interval{
				{StartMinute: 9*60 + 30, EndMinute: 10*60 + 30, Kind: KindBooked},
			},
			Now: day,
		})
		require.NoError(t, err)

		require.Len(t, grid.Slots, 3)
		assert.Equal(t, StatusBooked, grid.Slots[0].Status)
		assert.Equal(t, StatusBooked, grid.Slots[1].Status)
		assert.Equal(t, StatusAvailable, grid.Slots[2].Status)
	})

	t.Run("adjacent intervals do not collide", func(t *testing.T) {
		// Booking ends exactly where the slot starts: no overlap.
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      9 * 60,
			DayEnd:        11 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Occupied: []Interval{
				{StartMinute: 8 * 60, EndMinute: 9 * 60, Kind: KindBooked},
				{StartMinute: 11 * 60, EndMinute: 12 * 60, Kind: KindBooked},
			},
			Now: day,
		})
		require.NoError(t, err)
		for _, s := range grid.Slots {
			assert.Equal(t, StatusAvailable, s.Status)
		}
	})

	t.Run("blocked wins over booked", func(t *testing.T) {
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      10 * 60,
			DayEnd:        11 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Occupied: []Interval{
				{StartMinute: 10 * 60, EndMinute: 11 * 60, Kind: KindBooked},
				{StartMinute: 10 * 60, EndMinute: 11 * 60, Kind: KindBlocked, Reason: "maintenance"},
			},
			Now: day,
		})
		require.NoError(t, err)

		require.Len(t, grid.Slots, 1)
		assert.Equal(t, StatusBlocked, grid.Slots[0].Status)
		assert.Equal(t, "maintenance", grid.Slots[0].Reason)
	})

	t.Run("past wins over everything", func(t *testing.T) {
		// Now is 10:00; the 09:00–10:00 slot has fully elapsed even though it
		// also carries a booking.
		now := day.Add(10 * time.Hour)
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      9 * 60,
			DayEnd:        12 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Occupied: []Interval{
				{StartMinute: 9 * 60, EndMinute: 10 * 60, Kind: KindBooked},
			},
			Now: now,
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPast, grid.Slots[0].Status)
		assert.Equal(t, StatusAvailable, grid.Slots[1].Status)
		assert.Equal(t, StatusAvailable, grid.Slots[2].Status)
	})

	t.Run("slot in progress is not past", func(t *testing.T) {
		// Now is 09:30; the 09:00–10:00 slot has not fully elapsed.
		now := day.Add(9*time.Hour + 30*time.Minute)
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      9 * 60,
			DayEnd:        11 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Now:           now,
		})
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, grid.Slots[0].Status)
	})

	t.Run("booked slot carries a reason", func(t *testing.T) {
		grid, err := BuildGrid(GridParams{
			Date:          day,
			DayStart:      9 * 60,
			DayEnd:        10 * 60,
			SlotDuration:  60,
			RequiredSlots: 1,
			Occupied: []Interval{
				{StartMinute: 9 * 60, EndMinute: 10 * 60, Kind: KindBooked},
			},
			Now: day,
		})
		require.NoError(t, err)
		assert.Equal(t, "already booked", grid.Slots[0].Reason)
	})
}

func TestRequiredSlotsFor(t *testing.T) {
	cases := []struct {
		name     string
		duration int
		slot     int
		want     int
	}{
		{"exact single slot", 60, 60, 1},
		{"exact two slots", 120, 60, 2},
		{"rounds up", 90, 60, 2},
		{"smaller than one slot", 30, 60, 1},
		{"half-hour slots", 90, 30, 3},
		{"invalid slot duration", 60, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RequiredSlotsFor(tc.duration, tc.slot))
		})
	}
}
