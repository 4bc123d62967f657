package field

import (
	"net/http"
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "field not found")
	ErrCourtNotFound        = apperror.New(http.StatusNotFound, "court not found")
	ErrPhotoNotFound        = apperror.New(http.StatusNotFound, "photo not found")
	ErrEmptyName            = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidOpeningHours  = apperror.New(http.StatusBadRequest, "invalid opening hours")
	ErrInvalidGeo           = apperror.New(http.StatusBadRequest, "invalid coordinates")
	ErrInvalidSlotDuration  = apperror.New(http.StatusBadRequest, "slot duration must be positive")
	ErrInvalidField         = apperror.New(http.StatusBadRequest, "invalid field_id")
	ErrPhotoNotImage        = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
)

// Field represents a sports facility with one or more bookable courts.
// Opening hours apply to every court of the field; SlotDuration is the
// booking granularity in minutes.
type Field struct {
	ID                string
	Name              string
	SportType         string
	Address           string
	Description       string
	OpeningHoursStart string // Format: HH:MM:SS
	OpeningHoursEnd   string // Format: HH:MM:SS
	SlotDuration      int    // Minutes per slot (e.g., 30, 60)
	Longitude         float64
	Latitude          float64
	CreatedAt         time.Time
}

// Court is a bookable unit inside a field (e.g., "Court A").
type Court struct {
	ID        string
	FieldID   string
	FieldName string
	Name      string
	Surface   string
	CreatedAt time.Time
}

// Photo is an uploaded image attached to a field.
type Photo struct {
	ID            string
	FieldID       string
	Filename      string
	StoragePath   string  // Internal path, not exposed
	ThumbnailPath *string // Internal path, not exposed
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// Filter defines parameters for listing fields.
type Filter struct {
	Keyword   string // Search in Name or Address
	SportType string
	Page      int
	PageSize  int
}
