package booking

import (
	"net/http"
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict       = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange   = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrStartTimePast      = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrInvalidInput       = apperror.New(http.StatusBadRequest, "invalid input parameters")
	ErrInvalidResolution  = apperror.New(http.StatusBadRequest, "invalid conflict resolution")
	ErrSubmissionRejected = apperror.New(http.StatusConflict, "booking was taken before submission completed")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking reserves one court for one time range.
type Booking struct {
	ID            string
	CourtID       string
	CourtName     string
	FieldID       string
	FieldName     string
	CustomerName  string
	CustomerEmail string
	StartTime     time.Time
	EndTime       time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CourtID   string
	FieldID   string
	Status    string
	StartTime *time.Time // Bookings ending after this time
	EndTime   *time.Time // Bookings starting before this time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
