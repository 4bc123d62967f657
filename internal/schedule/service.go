package schedule

import (
	"context"
	"net/http"
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
)

// Service builds day schedules for courts from externally stored occupancy.
type Service interface {
	// DaySchedule builds the slot grid for one court on one date, sized for
	// a booking of durationMinutes.
	DaySchedule(ctx context.Context, courtID string, date time.Time, durationMinutes int) (*SlotGrid, error)
}

type service struct {
	repo         Repository
	fieldService field.Service
	now          clock.Now
}

func NewService(repo Repository, fieldService field.Service, now clock.Now) Service {
	return &service{
		repo:         repo,
		fieldService: fieldService,
		now:          now,
	}
}

func (s *service) DaySchedule(ctx context.Context, courtID string, date time.Time, durationMinutes int) (*SlotGrid, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	court, err := s.fieldService.GetCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	f, err := s.fieldService.GetByID(ctx, court.FieldID)
	if err != nil {
		return nil, err
	}

	dayStart, err := clock.ParseClock(f.OpeningHoursStart)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "invalid field opening hours")
	}
	dayEnd, err := clock.ParseClock(f.OpeningHoursEnd)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "invalid field opening hours")
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := day.Add(time.Duration(dayStart) * time.Minute)
	windowEnd := day.Add(time.Duration(dayEnd) * time.Minute)

	// Fetch failures surface as DataUnavailable; retrying is the caller's call.
	ranges, err := s.repo.Occupancy(ctx, courtID, windowStart, windowEnd)
	if err != nil {
		return nil, apperror.Wrap(err, ErrDataUnavailable.Code, ErrDataUnavailable.Message)
	}

	return BuildGrid(GridParams{
		Date:          day,
		DayStart:      dayStart,
		DayEnd:        dayEnd,
		SlotDuration:  f.SlotDuration,
		RequiredSlots: RequiredSlotsFor(durationMinutes, f.SlotDuration),
		Occupied:      toIntervals(day, ranges),
		Now:           s.now(),
	})
}

// toIntervals converts absolute occupied ranges to minutes-of-day intervals,
// clamped to the given day.
func toIntervals(day time.Time, ranges []OccupiedRange) []Interval {
	intervals := make([]Interval, 0, len(ranges))
	for _, rg := range ranges {
		start := int(rg.Start.Sub(day).Minutes())
		end := int(rg.End.Sub(day).Minutes())
		if start < 0 {
			start = 0
		}
		if end > 24*60 {
			end = 24 * 60
		}
		if end <= start {
			continue
		}
		intervals = append(intervals, Interval{
			StartMinute: start,
			EndMinute:   end,
			Kind:        rg.Kind,
			Reason:      rg.Reason,
		})
	}
	return intervals
}
