package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

var testCourts = []Court{
	{ID: "court-b", Name: "Court B"},
	{ID: "court-c", Name: "Court C"},
}

func newTestAggregator(dates ...string) *Aggregator {
	agg := NewAggregator(testCourts)
	items := make([]Item, len(dates))
	for i, d := range dates {
		items[i] = Item{Date: d, Reason: "court unavailable"}
	}
	agg.Initialize(items)
	return agg
}

func TestAggregatorInitialize(t *testing.T) {
	t.Run("every date defaults to skip", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14", "2026-09-21", "2026-09-28")

		assert.Equal(t, []string{"2026-09-14", "2026-09-21", "2026-09-28"}, agg.Dates())
		for _, date := range agg.Dates() {
			res, ok := agg.Resolution(date)
			require.True(t, ok)
			assert.Equal(t, TypeSkip, res.Type)
		}
	})

	t.Run("re-initialize replaces the map wholesale", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14", "2026-09-21")
		require.NoError(t, agg.SetSwitch("2026-09-14", "court-b"))

		agg.Initialize([]Item{{Date: "2026-09-21"}, {Date: "2026-10-05"}})

		_, ok := agg.Resolution("2026-09-14")
		assert.False(t, ok, "dropped date must not survive re-initialization")

		res, ok := agg.Resolution("2026-09-21")
		require.True(t, ok)
		assert.Equal(t, TypeSkip, res.Type, "kept date resets to the default")

		res, ok = agg.Resolution("2026-10-05")
		require.True(t, ok)
		assert.Equal(t, TypeSkip, res.Type)
	})

	t.Run("duplicate dates collapse to one entry", func(t *testing.T) {
		agg := NewAggregator(testCourts)
		agg.Initialize([]Item{{Date: "2026-09-14"}, {Date: "2026-09-14"}})
		assert.Equal(t, []string{"2026-09-14"}, agg.Dates())
	})
}

func TestAggregatorSetters(t *testing.T) {
	t.Run("switch records the alternate court", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")
		require.NoError(t, agg.SetSwitch("2026-09-14", "court-c"))

		res, _ := agg.Resolution("2026-09-14")
		assert.Equal(t, TypeSwitch, res.Type)
		assert.Equal(t, "court-c", res.CourtID)
	})

	t.Run("skip overwrites a previous choice", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")
		require.NoError(t, agg.SetSwitch("2026-09-14", "court-b"))
		require.NoError(t, agg.SetSkip("2026-09-14"))

		res, _ := agg.Resolution("2026-09-14")
		assert.Equal(t, TypeSkip, res.Type)
		assert.Empty(t, res.CourtID)
	})

	t.Run("unknown date is rejected", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")
		assert.ErrorIs(t, agg.SetSkip("2026-01-01"), ErrUnknownDate)
		assert.ErrorIs(t, agg.SetSwitch("2026-01-01", "court-b"), ErrUnknownDate)
	})

	t.Run("unknown court leaves the resolution untouched", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")
		require.NoError(t, agg.SetSwitch("2026-09-14", "court-b"))

		err := agg.SetSwitch("2026-09-14", "court-x")
		assert.ErrorIs(t, err, ErrInvalidCourt)

		res, _ := agg.Resolution("2026-09-14")
		assert.Equal(t, TypeSwitch, res.Type)
		assert.Equal(t, "court-b", res.CourtID, "failed switch must not clobber the previous choice")
	})
}

func TestAggregatorReschedule(t *testing.T) {
	t.Run("commit records the window", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")

		sess, err := agg.BeginReschedule("2026-09-14")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-14", sess.Date())

		require.NoError(t, agg.CommitReschedule("2026-09-14", "court-b", "16:00", "18:00"))

		res, _ := agg.Resolution("2026-09-14")
		assert.Equal(t, TypeReschedule, res.Type)
		assert.Equal(t, "court-b", res.CourtID)
		assert.Equal(t, "16:00", res.NewStartTime)
		assert.Equal(t, "18:00", res.NewEndTime)
	})

	t.Run("cancelled session keeps the prior resolution", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")
		require.NoError(t, agg.SetSwitch("2026-09-14", "court-c"))

		sess, err := agg.BeginReschedule("2026-09-14")
		require.NoError(t, err)
		sess.Cancel()

		res, _ := agg.Resolution("2026-09-14")
		assert.Equal(t, TypeSwitch, res.Type)
	})

	t.Run("unknown date cannot open a session", func(t *testing.T) {
		agg := newTestAggregator("2026-09-14")
		_, err := agg.BeginReschedule("2026-01-01")
		assert.ErrorIs(t, err, ErrUnknownDate)
	})
}

func TestAggregatorFinalize(t *testing.T) {
	agg := newTestAggregator("2026-09-14", "2026-09-21", "2026-09-28")
	require.NoError(t, agg.SetSwitch("2026-09-21", "court-b"))
	require.NoError(t, agg.CommitReschedule("2026-09-28", "court-c", "10:00", "11:00"))

	final := agg.Finalize()

	// Exactly one resolution per conflicting date.
	require.Len(t, final, 3)
	assert.Equal(t, TypeSkip, final["2026-09-14"].Type)
	assert.Equal(t, TypeSwitch, final["2026-09-21"].Type)
	assert.Equal(t, TypeReschedule, final["2026-09-28"].Type)

	// The returned map is a copy.
	final["2026-09-14"] = Switch("court-b")
	res, _ := agg.Resolution("2026-09-14")
	assert.Equal(t, TypeSkip, res.Type)
}

func TestSessionFetchOrdering(t *testing.T) {
	gridFor := func(t *testing.T, dayStart, dayEnd int) *schedule.SlotGrid {
		t.Helper()
		day, err := time.Parse("2006-01-02", "2026-09-14")
		require.NoError(t, err)
		grid, err := schedule.BuildGrid(schedule.GridParams{
			Date:          day,
			DayStart:      dayStart,
			DayEnd:        dayEnd,
			SlotDuration:  60,
			RequiredSlots: 1,
			Now:           day,
		})
		require.NoError(t, err)
		return grid
	}

	keyA := FetchKey{Date: "2026-09-14", CourtID: "court-b", DurationMinutes: 60}
	keyB := FetchKey{Date: "2026-09-14", CourtID: "court-b", DurationMinutes: 120}

	t.Run("matching delivery installs the grid", func(t *testing.T) {
		sess := newSession("2026-09-14")
		sess.Begin(keyA)

		grid := gridFor(t, 9*60, 12*60)
		assert.True(t, sess.Deliver(keyA, grid))
		assert.Same(t, grid, sess.Grid())
	})

	t.Run("superseded delivery is discarded", func(t *testing.T) {
		sess := newSession("2026-09-14")
		sess.Begin(keyA)
		sess.Begin(keyB) // user changed duration before the first fetch landed

		stale := gridFor(t, 9*60, 12*60)
		assert.False(t, sess.Deliver(keyA, stale))
		assert.Nil(t, sess.Grid(), "stale grid must not be installed")

		fresh := gridFor(t, 9*60, 15*60)
		assert.True(t, sess.Deliver(keyB, fresh))
		assert.Same(t, fresh, sess.Grid())
	})

	t.Run("previous grid survives until the new response lands", func(t *testing.T) {
		sess := newSession("2026-09-14")
		sess.Begin(keyA)
		first := gridFor(t, 9*60, 12*60)
		require.True(t, sess.Deliver(keyA, first))

		sess.Begin(keyB)
		assert.Same(t, first, sess.Grid())
	})

	t.Run("delivery after cancel is discarded", func(t *testing.T) {
		sess := newSession("2026-09-14")
		sess.Begin(keyA)
		sess.Cancel()

		assert.False(t, sess.Deliver(keyA, gridFor(t, 9*60, 12*60)))
		assert.Nil(t, sess.Grid())
	})
}
