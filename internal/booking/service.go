package booking

import (
	"context"
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/conflict"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

type CreateRequest struct {
	CourtID       string
	CustomerName  string
	CustomerEmail string
	StartTime     time.Time
	EndTime       time.Time
}

type UpdateRequest struct {
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error

	// PlanRecurring expands a weekly pattern and reports the dates on which
	// the court is not free at the requested time.
	PlanRecurring(ctx context.Context, req RecurringRequest) (*RecurringPlan, error)

	// SubmitRecurring validates the per-date resolutions against the current
	// plan and inserts every non-skipped occurrence in one transaction.
	SubmitRecurring(ctx context.Context, req RecurringRequest, resolutions map[string]conflict.Resolution) ([]*Booking, error)
}

type service struct {
	repo            Repository
	fieldService    field.Service
	scheduleService schedule.Service
	now             clock.Now
}

func NewService(repo Repository, fieldService field.Service, scheduleService schedule.Service, now clock.Now) Service {
	return &service{
		repo:            repo,
		fieldService:    fieldService,
		scheduleService: scheduleService,
		now:             now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if req.EndTime.Before(req.StartTime) || req.EndTime.Equal(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartTime.Before(s.now().UTC()) {
		return nil, ErrStartTimePast
	}

	if _, err := s.fieldService.GetCourt(ctx, req.CourtID); err != nil {
		return nil, err
	}

	hasOverlap, err := s.repo.HasOverlap(ctx, req.CourtID, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		CourtID:       req.CourtID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStart := b.StartTime
	newEnd := b.EndTime
	timeChanged := false

	if req.StartTime != nil {
		newStart = *req.StartTime
		timeChanged = true
	}
	if req.EndTime != nil {
		newEnd = *req.EndTime
		timeChanged = true
	}

	if timeChanged {
		if newEnd.Before(newStart) || newEnd.Equal(newStart) {
			return nil, ErrInvalidTimeRange
		}
		if req.StartTime != nil && req.StartTime.Before(s.now().UTC()) {
			return nil, ErrStartTimePast
		}

		hasOverlap, err := s.repo.HasOverlap(ctx, b.CourtID, newStart, newEnd, b.ID)
		if err != nil {
			return nil, err
		}
		if hasOverlap {
			return nil, ErrTimeConflict
		}
		b.StartTime = newStart
		b.EndTime = newEnd
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusPending && st != StatusConfirmed && st != StatusCancelled {
			return nil, ErrInvalidStatus
		}
		b.Status = st
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
