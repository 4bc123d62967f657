package schedule

import (
	"net/http"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
)

var (
	ErrInvalidConfiguration = apperror.New(http.StatusBadRequest, "invalid slot grid configuration")
	ErrInvalidDuration      = apperror.New(http.StatusBadRequest, "duration must be positive")
	ErrDataUnavailable      = apperror.New(http.StatusServiceUnavailable, "schedule data unavailable")
)

// SlotStatus classifies a time slot. Statuses are mutually exclusive.
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	StatusBlocked   SlotStatus = "blocked"
	StatusPast      SlotStatus = "past"
)

// TimeSlot is one fixed-duration unit of a day's grid. Times are wall-clock
// "HH:MM" labels; within a grid, slots are contiguous and ordered, with
// slot[i].EndTime == slot[i+1].StartTime.
type TimeSlot struct {
	StartTime string
	EndTime   string
	Status    SlotStatus
	Reason    string // Optional explanation when not available
}

// SlotGrid is the ordered slot sequence for one (court, date) pair.
type SlotGrid struct {
	Slots         []TimeSlot
	SlotDuration  int // Minutes per slot, constant across the grid
	RequiredSlots int // Consecutive slots needed for the requested duration
}

// IntervalKind tags an occupied interval as a booking or a block.
type IntervalKind string

const (
	KindBooked  IntervalKind = "booked"
	KindBlocked IntervalKind = "blocked"
)

// Interval is an occupied range within a day, in minutes from midnight.
type Interval struct {
	StartMinute int
	EndMinute   int
	Kind        IntervalKind
	Reason      string
}
