package schedule

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
)

type fakeOccupancyRepo struct {
	ranges []OccupiedRange
	err    error
}

func (f *fakeOccupancyRepo) Occupancy(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]OccupiedRange, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ranges, nil
}

// fakeCourtDirectory serves one field with one court.
type fakeCourtDirectory struct {
	field field.Field
	court field.Court
}

func (f *fakeCourtDirectory) Create(ctx context.Context, req field.CreateFieldRequest) (*field.Field, error) {
	return nil, field.ErrNotFound
}

func (f *fakeCourtDirectory) GetByID(ctx context.Context, id string) (*field.Field, error) {
	if id != f.field.ID {
		return nil, field.ErrNotFound
	}
	out := f.field
	return &out, nil
}

func (f *fakeCourtDirectory) List(ctx context.Context, filter field.Filter) ([]*field.Field, int, error) {
	return nil, 0, nil
}

func (f *fakeCourtDirectory) Update(ctx context.Context, id string, req field.UpdateFieldRequest) (*field.Field, error) {
	return nil, field.ErrNotFound
}

func (f *fakeCourtDirectory) Delete(ctx context.Context, id string) error {
	return field.ErrNotFound
}

func (f *fakeCourtDirectory) CreateCourt(ctx context.Context, req field.CreateCourtRequest) (*field.Court, error) {
	return nil, field.ErrNotFound
}

func (f *fakeCourtDirectory) GetCourt(ctx context.Context, id string) (*field.Court, error) {
	if id != f.court.ID {
		return nil, field.ErrCourtNotFound
	}
	out := f.court
	return &out, nil
}

func (f *fakeCourtDirectory) ListCourts(ctx context.Context, fieldID string) ([]*field.Court, error) {
	return []*field.Court{&f.court}, nil
}

func (f *fakeCourtDirectory) AlternateCourts(ctx context.Context, fieldID string, excludeCourtID string) ([]*field.Court, error) {
	return nil, nil
}

func (f *fakeCourtDirectory) DeleteCourt(ctx context.Context, id string) error {
	return field.ErrCourtNotFound
}

func newDirectory() *fakeCourtDirectory {
	return &fakeCourtDirectory{
		field: field.Field{
			ID:                "field-1",
			Name:              "Downtown Arena",
			OpeningHoursStart: "06:00:00",
			OpeningHoursEnd:   "22:00:00",
			SlotDuration:      60,
		},
		court: field.Court{ID: "court-1", FieldID: "field-1", Name: "Court 1"},
	}
}

func TestDaySchedule(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	now := clock.Fixed(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	t.Run("grid follows the field opening hours", func(t *testing.T) {
		svc := NewService(&fakeOccupancyRepo{}, newDirectory(), now)

		grid, err := svc.DaySchedule(ctx, "court-1", day, 120)
		require.NoError(t, err)

		require.Len(t, grid.Slots, 16)
		assert.Equal(t, "06:00", grid.Slots[0].StartTime)
		assert.Equal(t, "22:00", grid.Slots[15].EndTime)
		assert.Equal(t, 60, grid.SlotDuration)
		assert.Equal(t, 2, grid.RequiredSlots)
	})

	t.Run("occupancy marks slots", func(t *testing.T) {
		repo := &fakeOccupancyRepo{ranges: []OccupiedRange{
			{
				Start: day.Add(9 * time.Hour),
				End:   day.Add(10 * time.Hour),
				Kind:  KindBooked,
			},
			{
				Start:  day.Add(12 * time.Hour),
				End:    day.Add(14 * time.Hour),
				Kind:   KindBlocked,
				Reason: "resurfacing",
			},
		}}
		svc := NewService(repo, newDirectory(), now)

		grid, err := svc.DaySchedule(ctx, "court-1", day, 60)
		require.NoError(t, err)

		assert.Equal(t, StatusBooked, grid.Slots[3].Status)  // 09:00-10:00
		assert.Equal(t, StatusBlocked, grid.Slots[6].Status) // 12:00-13:00
		assert.Equal(t, StatusBlocked, grid.Slots[7].Status) // 13:00-14:00
		assert.Equal(t, "resurfacing", grid.Slots[6].Reason)
	})

	t.Run("occupancy crossing midnight is clamped", func(t *testing.T) {
		repo := &fakeOccupancyRepo{ranges: []OccupiedRange{
			{
				Start: day.Add(-2 * time.Hour), // previous evening
				End:   day.Add(7 * time.Hour),
				Kind:  KindBlocked,
			},
		}}
		svc := NewService(repo, newDirectory(), now)

		grid, err := svc.DaySchedule(ctx, "court-1", day, 60)
		require.NoError(t, err)

		assert.Equal(t, StatusBlocked, grid.Slots[0].Status) // 06:00-07:00
		assert.Equal(t, StatusAvailable, grid.Slots[1].Status)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		svc := NewService(&fakeOccupancyRepo{}, newDirectory(), now)
		_, err := svc.DaySchedule(ctx, "court-1", day, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("unknown court", func(t *testing.T) {
		svc := NewService(&fakeOccupancyRepo{}, newDirectory(), now)
		_, err := svc.DaySchedule(ctx, "court-404", day, 60)
		assert.ErrorIs(t, err, field.ErrCourtNotFound)
	})

	t.Run("repository failure surfaces as unavailable", func(t *testing.T) {
		repo := &fakeOccupancyRepo{err: errors.New("connection refused")}
		svc := NewService(repo, newDirectory(), now)

		_, err := svc.DaySchedule(ctx, "court-1", day, 60)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	})
}
