package conflict

import (
	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

// FetchKey identifies one day-schedule request. A session only accepts the
// response whose key matches its active key, so a late response for a
// (date, court, duration) the user has moved past is discarded.
type FetchKey struct {
	Date            string // YYYY-MM-DD
	CourtID         string
	DurationMinutes int
}

// Session is the short-lived reschedule sub-session for one conflicting
// date. It holds the grid being browsed and the in-flight fetch key; it is
// discarded wholesale once a reschedule commits or the user backs out.
type Session struct {
	date      string
	active    FetchKey
	hasActive bool
	grid      *schedule.SlotGrid
}

func newSession(date string) *Session {
	return &Session{date: date}
}

// Date returns the conflicting date this session is rescheduling.
func (s *Session) Date() string {
	return s.date
}

// Begin marks key as the active schedule request, superseding any earlier
// one. The previous grid stays visible until the new response lands.
func (s *Session) Begin(key FetchKey) {
	s.active = key
	s.hasActive = true
}

// Deliver installs the grid for key. It reports false and changes nothing
// when key no longer matches the active request (a superseded fetch).
func (s *Session) Deliver(key FetchKey, grid *schedule.SlotGrid) bool {
	if !s.hasActive || key != s.active {
		return false
	}
	s.grid = grid
	return true
}

// Grid returns the currently installed grid, or nil before the first
// delivery.
func (s *Session) Grid() *schedule.SlotGrid {
	return s.grid
}

// Cancel discards the session's state. The aggregator's map is untouched;
// the date keeps whatever resolution it had before the session opened.
func (s *Session) Cancel() {
	s.grid = nil
	s.hasActive = false
}
