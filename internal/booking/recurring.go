package booking

import (
	"context"
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/conflict"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/selection"
)

const maxRecurringWeeks = 52

// RecurringRequest describes a weekly booking pattern: the same court, start
// time and duration on the same weekday for a number of weeks.
type RecurringRequest struct {
	CourtID         string
	CustomerName    string
	CustomerEmail   string
	StartDate       time.Time // First occurrence; the weekday anchors the series
	Weeks           int
	StartTime       string // HH:MM
	DurationMinutes int
}

// RecurringPlan is the expansion of a RecurringRequest: every occurrence
// date, the dates that clash, and the alternate courts a clash could switch
// to.
type RecurringPlan struct {
	Dates     []string
	Conflicts []conflict.Item
	Courts    []conflict.Court
}

func validateRecurring(req RecurringRequest) (startMinute int, err error) {
	if req.Weeks < 1 || req.Weeks > maxRecurringWeeks {
		return 0, ErrInvalidInput
	}
	if req.DurationMinutes <= 0 {
		return 0, ErrInvalidInput
	}
	startMinute, err = clock.ParseClock(req.StartTime)
	if err != nil {
		return 0, ErrInvalidInput
	}
	return startMinute, nil
}

// occurrenceWindow returns the absolute time range of one occurrence.
func occurrenceWindow(day time.Time, startMinute, durationMinutes int) (time.Time, time.Time) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := midnight.Add(time.Duration(startMinute) * time.Minute)
	return start, start.Add(time.Duration(durationMinutes) * time.Minute)
}

func (s *service) PlanRecurring(ctx context.Context, req RecurringRequest) (*RecurringPlan, error) {
	startMinute, err := validateRecurring(req)
	if err != nil {
		return nil, err
	}

	court, err := s.fieldService.GetCourt(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	alternates, err := s.fieldService.AlternateCourts(ctx, court.FieldID, court.ID)
	if err != nil {
		return nil, err
	}
	courts := make([]conflict.Court, len(alternates))
	for i, c := range alternates {
		courts[i] = conflict.Court{ID: c.ID, Name: c.Name}
	}

	now := s.now().UTC()
	plan := &RecurringPlan{Courts: courts}

	for week := 0; week < req.Weeks; week++ {
		day := req.StartDate.AddDate(0, 0, 7*week)
		date := day.Format("2006-01-02")
		plan.Dates = append(plan.Dates, date)

		start, end := occurrenceWindow(day, startMinute, req.DurationMinutes)

		if start.Before(now) {
			plan.Conflicts = append(plan.Conflicts, conflict.Item{
				Date:   date,
				Reason: "requested time has passed",
			})
			continue
		}

		hasOverlap, err := s.repo.HasOverlap(ctx, req.CourtID, start, end, "")
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			plan.Conflicts = append(plan.Conflicts, conflict.Item{
				Date:   date,
				Reason: "court unavailable at the requested time",
			})
		}
	}

	return plan, nil
}

func (s *service) SubmitRecurring(ctx context.Context, req RecurringRequest, resolutions map[string]conflict.Resolution) ([]*Booking, error) {
	startMinute, err := validateRecurring(req)
	if err != nil {
		return nil, err
	}

	// Re-plan against current occupancy; the conflict list the client
	// resolved may already be stale.
	plan, err := s.PlanRecurring(ctx, req)
	if err != nil {
		return nil, err
	}

	agg := conflict.NewAggregator(plan.Courts)
	agg.Initialize(plan.Conflicts)

	for date, res := range resolutions {
		if err := s.applyResolution(ctx, agg, req, startMinute, date, res); err != nil {
			return nil, err
		}
	}

	final := agg.Finalize()

	var bookings []*Booking
	for _, date := range plan.Dates {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidInput
		}

		res, conflicted := final[date]
		if !conflicted {
			start, end := occurrenceWindow(day, startMinute, req.DurationMinutes)
			bookings = append(bookings, s.newOccurrence(req, req.CourtID, start, end))
			continue
		}

		switch res.Type {
		case conflict.TypeSkip:
			// Date dropped from the series
		case conflict.TypeSwitch:
			start, end := occurrenceWindow(day, startMinute, req.DurationMinutes)
			bookings = append(bookings, s.newOccurrence(req, res.CourtID, start, end))
		case conflict.TypeReschedule:
			newStart, err := clock.ParseClock(res.NewStartTime)
			if err != nil {
				return nil, ErrInvalidResolution
			}
			newEnd, err := clock.ParseClock(res.NewEndTime)
			if err != nil {
				return nil, ErrInvalidResolution
			}
			start, end := occurrenceWindow(day, newStart, newEnd-newStart)
			bookings = append(bookings, s.newOccurrence(req, res.CourtID, start, end))
		default:
			return nil, ErrInvalidResolution
		}
	}

	if len(bookings) == 0 {
		return []*Booking{}, nil
	}

	if err := s.repo.CreateAll(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// applyResolution replays one client-supplied resolution through the
// aggregator, re-validating reschedules against a freshly built grid.
func (s *service) applyResolution(ctx context.Context, agg *conflict.Aggregator, req RecurringRequest, startMinute int, date string, res conflict.Resolution) error {
	switch res.Type {
	case conflict.TypeSkip:
		return agg.SetSkip(date)

	case conflict.TypeSwitch:
		if _, ok := agg.Resolution(date); !ok {
			return conflict.ErrUnknownDate
		}
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return ErrInvalidResolution
		}
		// Switching courts keeps the original window; an elapsed occurrence
		// cannot be booked on any court.
		start, _ := occurrenceWindow(day, startMinute, req.DurationMinutes)
		if start.Before(s.now().UTC()) {
			return ErrStartTimePast
		}
		return agg.SetSwitch(date, res.CourtID)

	case conflict.TypeReschedule:
		if res.NewStartTime == "" {
			return ErrInvalidResolution
		}
		courtID := res.CourtID
		if courtID == "" {
			courtID = req.CourtID
		}
		if courtID != req.CourtID && !hasCourt(agg, courtID) {
			return conflict.ErrInvalidCourt
		}

		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return ErrInvalidResolution
		}

		// Fresh grid: the slot the user picked may have been taken since.
		grid, err := s.scheduleService.DaySchedule(ctx, courtID, day, req.DurationMinutes)
		if err != nil {
			return err
		}

		idx := selection.FindStartIndex(grid, res.NewStartTime)
		if idx < 0 {
			return apperror.Wrap(selection.ErrSelectionNoLongerValid,
				selection.ErrSelectionNoLongerValid.Code,
				"requested start time is not on the current schedule")
		}

		start, end, err := selection.Resolve(grid, idx, grid.RequiredSlots)
		if err != nil {
			return err
		}
		if res.NewEndTime != "" && res.NewEndTime != end {
			return ErrInvalidResolution
		}

		return agg.CommitReschedule(date, courtID, start, end)

	default:
		return ErrInvalidResolution
	}
}

func (s *service) newOccurrence(req RecurringRequest, courtID string, start, end time.Time) *Booking {
	return &Booking{
		CourtID:       courtID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartTime:     start,
		EndTime:       end,
		Status:        StatusPending,
	}
}

func hasCourt(agg *conflict.Aggregator, courtID string) bool {
	for _, c := range agg.Courts() {
		if c.ID == courtID {
			return true
		}
	}
	return false
}
