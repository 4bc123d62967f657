package conflict

import (
	"net/http"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
)

var (
	ErrInvalidCourt    = apperror.New(http.StatusBadRequest, "court is not an available alternative")
	ErrUnknownDate     = apperror.New(http.StatusBadRequest, "date is not in the conflict set")
	ErrNotRescheduling = apperror.New(http.StatusConflict, "no reschedule session open for this date")
)

// Item is one date on which a recurring booking cannot proceed as planned.
type Item struct {
	Date   string // YYYY-MM-DD
	Reason string // Human-readable cause, e.g. "court unavailable"
}

// ResolutionType enumerates the remedies for one conflicting date.
type ResolutionType string

const (
	TypeSkip       ResolutionType = "skip"
	TypeSwitch     ResolutionType = "switch"
	TypeReschedule ResolutionType = "reschedule"
)

// Resolution is a tagged union: Skip carries nothing, Switch carries the
// alternate court, Reschedule carries the court plus the new time window.
// Construct through Skip/Switch/Reschedule so the tag and fields stay
// consistent.
type Resolution struct {
	Type         ResolutionType
	CourtID      string
	NewStartTime string // HH:MM
	NewEndTime   string // HH:MM
}

// Skip leaves the conflicting date unbooked.
func Skip() Resolution {
	return Resolution{Type: TypeSkip}
}

// Switch books the original time on a different court.
func Switch(courtID string) Resolution {
	return Resolution{Type: TypeSwitch, CourtID: courtID}
}

// Reschedule books a different time window, typically on the original court.
func Reschedule(courtID, newStartTime, newEndTime string) Resolution {
	return Resolution{
		Type:         TypeReschedule,
		CourtID:      courtID,
		NewStartTime: newStartTime,
		NewEndTime:   newEndTime,
	}
}

// Court is read-only reference data for the switch-court choice.
type Court struct {
	ID   string
	Name string
}
