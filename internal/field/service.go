package field

import (
	"context"
	"strings"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
)

// CreateFieldRequest carries data to create a field.
type CreateFieldRequest struct {
	Name              string
	SportType         string
	Address           string
	Description       string
	OpeningHoursStart string
	OpeningHoursEnd   string
	SlotDuration      int
	Longitude         float64
	Latitude          float64
}

// UpdateFieldRequest carries data for partial updates.
type UpdateFieldRequest struct {
	Name              *string
	SportType         *string
	Address           *string
	Description       *string
	OpeningHoursStart *string
	OpeningHoursEnd   *string
	SlotDuration      *int
	Longitude         *float64
	Latitude          *float64
}

// CreateCourtRequest carries data to create a court under a field.
type CreateCourtRequest struct {
	FieldID string
	Name    string
	Surface string
}

type Service interface {
	Create(ctx context.Context, req CreateFieldRequest) (*Field, error)
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, id string, req UpdateFieldRequest) (*Field, error)
	Delete(ctx context.Context, id string) error

	CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error)
	GetCourt(ctx context.Context, id string) (*Court, error)
	ListCourts(ctx context.Context, fieldID string) ([]*Court, error)
	// AlternateCourts returns the field's courts excluding the given one,
	// i.e. the candidates for a switch-court conflict resolution.
	AlternateCourts(ctx context.Context, fieldID string, excludeCourtID string) ([]*Court, error)
	DeleteCourt(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validateField checks the logical rules for a Field struct.
func validateField(f *Field) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrEmptyName
	}

	if f.SlotDuration <= 0 {
		return ErrInvalidSlotDuration
	}

	// Latitude: -90 to 90, Longitude: -180 to 180
	if f.Latitude < -90 || f.Latitude > 90 || f.Longitude < -180 || f.Longitude > 180 {
		return ErrInvalidGeo
	}

	start, err1 := clock.ParseClock(f.OpeningHoursStart)
	end, err2 := clock.ParseClock(f.OpeningHoursEnd)
	if err1 != nil || err2 != nil {
		return ErrInvalidOpeningHours
	}

	// End must be after start (single-day operating window)
	if end <= start {
		return ErrInvalidOpeningHours
	}

	return nil
}

func (s *service) Create(ctx context.Context, req CreateFieldRequest) (*Field, error) {
	f := &Field{
		Name:              req.Name,
		SportType:         req.SportType,
		Address:           req.Address,
		Description:       req.Description,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
		SlotDuration:      req.SlotDuration,
		Longitude:         req.Longitude,
		Latitude:          req.Latitude,
	}

	if err := validateField(f); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Field, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateFieldRequest) (*Field, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.SportType != nil {
		f.SportType = *req.SportType
	}
	if req.Address != nil {
		f.Address = *req.Address
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.OpeningHoursStart != nil {
		f.OpeningHoursStart = *req.OpeningHoursStart
	}
	if req.OpeningHoursEnd != nil {
		f.OpeningHoursEnd = *req.OpeningHoursEnd
	}
	if req.SlotDuration != nil {
		f.SlotDuration = *req.SlotDuration
	}
	if req.Longitude != nil {
		f.Longitude = *req.Longitude
	}
	if req.Latitude != nil {
		f.Latitude = *req.Latitude
	}

	if err := validateField(f); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.FieldID == "" {
		return nil, ErrInvalidField
	}

	// Field must exist
	f, err := s.repo.GetByID(ctx, req.FieldID)
	if err != nil {
		return nil, ErrInvalidField
	}

	c := &Court{
		FieldID:   f.ID,
		FieldName: f.Name,
		Name:      req.Name,
		Surface:   req.Surface,
	}

	if err := s.repo.CreateCourt(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCourt(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetCourtByID(ctx, id)
}

func (s *service) ListCourts(ctx context.Context, fieldID string) ([]*Court, error) {
	return s.repo.ListCourts(ctx, fieldID)
}

func (s *service) AlternateCourts(ctx context.Context, fieldID string, excludeCourtID string) ([]*Court, error) {
	courts, err := s.repo.ListCourts(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	alternates := make([]*Court, 0, len(courts))
	for _, c := range courts {
		if c.ID == excludeCourtID {
			continue
		}
		alternates = append(alternates, c)
	}
	return alternates, nil
}

func (s *service) DeleteCourt(ctx context.Context, id string) error {
	if _, err := s.repo.GetCourtByID(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCourt(ctx, id)
}
