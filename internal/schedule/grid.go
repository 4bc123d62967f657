package schedule

import (
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/clock"
)

// GridParams are the inputs for building one day's slot grid.
// Day boundaries are minutes from midnight; Now is injected rather than
// read from the system clock so grid building stays deterministic.
type GridParams struct {
	Date          time.Time // Calendar day the grid belongs to (midnight, any location)
	DayStart      int       // Operating window start, minutes from midnight
	DayEnd        int       // Operating window end, minutes from midnight (exclusive)
	SlotDuration  int       // Minutes per slot
	RequiredSlots int       // Consecutive slots needed; must be >= 1
	Occupied      []Interval
	Now           time.Time // Current wall-clock time, for marking past slots
}

// BuildGrid converts a day's operating window and occupied intervals into an
// ordered SlotGrid. It is a pure function of its inputs.
//
// A trailing window remainder shorter than SlotDuration is truncated. Status
// is assigned per slot in priority order: past, blocked, booked, available.
// A slot overlapping an occupied interval even partially is unavailable; no
// partial-slot bookings.
func BuildGrid(p GridParams) (*SlotGrid, error) {
	if p.SlotDuration <= 0 || p.DayEnd <= p.DayStart || p.RequiredSlots < 1 {
		return nil, ErrInvalidConfiguration
	}

	day := time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), 0, 0, 0, 0, p.Date.Location())

	count := (p.DayEnd - p.DayStart) / p.SlotDuration
	slots := make([]TimeSlot, 0, count)

	for i := 0; i < count; i++ {
		startMin := p.DayStart + i*p.SlotDuration
		endMin := startMin + p.SlotDuration

		slot := TimeSlot{
			StartTime: clock.FormatClock(startMin),
			EndTime:   clock.FormatClock(endMin),
			Status:    StatusAvailable,
		}

		slotEnd := day.Add(time.Duration(endMin) * time.Minute)

		switch {
		case !slotEnd.After(p.Now):
			slot.Status = StatusPast
			slot.Reason = "slot has passed"
		default:
			if iv, ok := firstOverlap(startMin, endMin, p.Occupied, KindBlocked); ok {
				slot.Status = StatusBlocked
				slot.Reason = blockReason(iv, "court unavailable")
			} else if iv, ok := firstOverlap(startMin, endMin, p.Occupied, KindBooked); ok {
				slot.Status = StatusBooked
				slot.Reason = blockReason(iv, "already booked")
			}
		}

		slots = append(slots, slot)
	}

	return &SlotGrid{
		Slots:         slots,
		SlotDuration:  p.SlotDuration,
		RequiredSlots: p.RequiredSlots,
	}, nil
}

// RequiredSlotsFor returns the smallest slot count whose total length covers
// durationMinutes.
func RequiredSlotsFor(durationMinutes, slotDuration int) int {
	if slotDuration <= 0 {
		return 0
	}
	return (durationMinutes + slotDuration - 1) / slotDuration
}

// firstOverlap finds the first interval of the given kind overlapping the
// half-open slot range [startMin, endMin).
func firstOverlap(startMin, endMin int, occupied []Interval, kind IntervalKind) (Interval, bool) {
	for _, iv := range occupied {
		if iv.Kind != kind {
			continue
		}
		if startMin < iv.EndMinute && iv.StartMinute < endMin {
			return iv, true
		}
	}
	return Interval{}, false
}

func blockReason(iv Interval, fallback string) string {
	if iv.Reason != "" {
		return iv.Reason
	}
	return fallback
}
