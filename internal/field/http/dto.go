package http

import (
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/field"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/request"
)

// FieldTag is the compact field reference embedded in other responses.
type FieldTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CourtTag is the compact court reference embedded in other responses.
type CourtTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListFieldsRequest defines query parameters for listing fields.
type ListFieldsRequest struct {
	request.ListParams
	Keyword   string `form:"keyword"`
	SportType string `form:"sport_type"`
}

type CreateFieldRequest struct {
	Name              string  `json:"name" binding:"required"`
	SportType         string  `json:"sport_type" binding:"required"`
	Address           string  `json:"address" binding:"required"`
	Description       string  `json:"description"`
	OpeningHoursStart string  `json:"opening_hours_start" binding:"required"`
	OpeningHoursEnd   string  `json:"opening_hours_end" binding:"required"`
	SlotDuration      int     `json:"slot_duration" binding:"required,min=1"`
	Longitude         float64 `json:"longitude"`
	Latitude          float64 `json:"latitude"`
}

type UpdateFieldRequest struct {
	Name              *string  `json:"name"`
	SportType         *string  `json:"sport_type"`
	Address           *string  `json:"address"`
	Description       *string  `json:"description"`
	OpeningHoursStart *string  `json:"opening_hours_start"`
	OpeningHoursEnd   *string  `json:"opening_hours_end"`
	SlotDuration      *int     `json:"slot_duration"`
	Longitude         *float64 `json:"longitude"`
	Latitude          *float64 `json:"latitude"`
}

type FieldResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	SportType         string    `json:"sport_type"`
	Address           string    `json:"address"`
	Description       string    `json:"description"`
	OpeningHoursStart string    `json:"opening_hours_start"`
	OpeningHoursEnd   string    `json:"opening_hours_end"`
	SlotDuration      int       `json:"slot_duration"`
	Longitude         float64   `json:"longitude"`
	Latitude          float64   `json:"latitude"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewFieldResponse(f *field.Field) FieldResponse {
	return FieldResponse{
		ID:                f.ID,
		Name:              f.Name,
		SportType:         f.SportType,
		Address:           f.Address,
		Description:       f.Description,
		OpeningHoursStart: f.OpeningHoursStart,
		OpeningHoursEnd:   f.OpeningHoursEnd,
		SlotDuration:      f.SlotDuration,
		Longitude:         f.Longitude,
		Latitude:          f.Latitude,
		CreatedAt:         f.CreatedAt,
	}
}

type CreateCourtRequest struct {
	Name    string `json:"name" binding:"required"`
	Surface string `json:"surface"`
}

type CourtResponse struct {
	ID        string    `json:"id"`
	Field     FieldTag  `json:"field"`
	Name      string    `json:"name"`
	Surface   string    `json:"surface"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCourtResponse(c *field.Court) CourtResponse {
	return CourtResponse{
		ID:        c.ID,
		Field:     FieldTag{ID: c.FieldID, Name: c.FieldName},
		Name:      c.Name,
		Surface:   c.Surface,
		CreatedAt: c.CreatedAt,
	}
}

type PhotoResponse struct {
	ID           string    `json:"id"`
	FieldID      string    `json:"field_id"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *field.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		FieldID:     p.FieldID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         field.PhotoURL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		thumbURL := field.PhotoThumbnailURL(p.ID)
		resp.ThumbnailURL = &thumbURL
	}
	return resp
}
