// Package conflict maintains the per-date resolution map for a recurring
// booking whose schedule clashes on some dates. The aggregator is plain
// in-memory state driven from a single goroutine (one resolution session);
// it performs no I/O and never mutates the court list it is given.
package conflict

// Aggregator owns the resolution map for one conflict-resolution session.
// Every conflicting date always has exactly one resolution; the default is
// skip until the user chooses otherwise.
type Aggregator struct {
	courts      []Court
	order       []string
	resolutions map[string]Resolution
}

// NewAggregator creates an Aggregator with the available alternate courts
// ("courts other than the one already booked").
func NewAggregator(courts []Court) *Aggregator {
	return &Aggregator{
		courts:      courts,
		resolutions: make(map[string]Resolution),
	}
}

// Initialize resets the map to one skip resolution per conflict item. Calling
// it again fully replaces the previous map rather than merging, so stale
// selections cannot outlive a refreshed conflict list.
func (a *Aggregator) Initialize(items []Item) {
	a.order = make([]string, 0, len(items))
	a.resolutions = make(map[string]Resolution, len(items))
	for _, item := range items {
		if _, seen := a.resolutions[item.Date]; seen {
			continue
		}
		a.order = append(a.order, item.Date)
		a.resolutions[item.Date] = Skip()
	}
}

// SetSkip overwrites the date's resolution with skip.
func (a *Aggregator) SetSkip(date string) error {
	if _, ok := a.resolutions[date]; !ok {
		return ErrUnknownDate
	}
	a.resolutions[date] = Skip()
	return nil
}

// SetSwitch overwrites the date's resolution with a switch to courtID.
// An unknown court leaves the map untouched.
func (a *Aggregator) SetSwitch(date, courtID string) error {
	if _, ok := a.resolutions[date]; !ok {
		return ErrUnknownDate
	}
	if !a.hasCourt(courtID) {
		return ErrInvalidCourt
	}
	a.resolutions[date] = Switch(courtID)
	return nil
}

// BeginReschedule opens a nested selector session for the date. The map is
// not touched until CommitReschedule; cancelling the session leaves whatever
// resolution the date had before.
func (a *Aggregator) BeginReschedule(date string) (*Session, error) {
	if _, ok := a.resolutions[date]; !ok {
		return nil, ErrUnknownDate
	}
	return newSession(date), nil
}

// CommitReschedule records the window produced by a successful selector
// resolve for the date.
func (a *Aggregator) CommitReschedule(date, courtID, startTime, endTime string) error {
	if _, ok := a.resolutions[date]; !ok {
		return ErrUnknownDate
	}
	a.resolutions[date] = Reschedule(courtID, startTime, endTime)
	return nil
}

// Resolution returns the current resolution for a date.
func (a *Aggregator) Resolution(date string) (Resolution, bool) {
	r, ok := a.resolutions[date]
	return r, ok
}

// Courts returns the available alternate courts.
func (a *Aggregator) Courts() []Court {
	out := make([]Court, len(a.courts))
	copy(out, a.courts)
	return out
}

// Dates returns the conflicting dates in their original order.
func (a *Aggregator) Dates() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Finalize returns the complete resolution map: exactly one entry per
// conflict date, never missing, never duplicated.
func (a *Aggregator) Finalize() map[string]Resolution {
	out := make(map[string]Resolution, len(a.resolutions))
	for date, r := range a.resolutions {
		out[date] = r
	}
	return out
}

func (a *Aggregator) hasCourt(courtID string) bool {
	for _, c := range a.courts {
		if c.ID == courtID {
			return true
		}
	}
	return false
}
