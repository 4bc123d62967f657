// Package selection validates and resolves contiguous slot runs on a day's
// grid. It is pure computation: callers supply the grid, selection never
// fetches or caches anything.
package selection

import (
	"fmt"
	"net/http"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/apperror"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

var ErrSelectionNoLongerValid = apperror.New(http.StatusConflict, "selected time is no longer available")

// FailureDetail identifies why a run starting at some index is inadmissible:
// either the first blocking slot inside the grid, or the run extending past
// the end of the grid with every in-bounds slot free.
type FailureDetail struct {
	RequiredSlots     int
	Index             int    // First blocking slot index; meaningless when InsufficientSlots
	SlotLabel         string // "HH:MM–HH:MM" of the blocking slot
	Status            schedule.SlotStatus
	InsufficientSlots bool
}

// Message renders the user-facing explanation.
func (d FailureDetail) Message() string {
	if d.InsufficientSlots {
		return fmt.Sprintf("need %d consecutive slots; insufficient remaining slots", d.RequiredSlots)
	}
	return fmt.Sprintf("need %d consecutive slots; slot %s is %s", d.RequiredSlots, d.SlotLabel, d.Status)
}

// CanSelect reports whether a run of requiredSlots available slots starts at
// startIndex. This is the sole admissibility rule; no other slot in the grid
// is considered.
func CanSelect(grid *schedule.SlotGrid, startIndex, requiredSlots int) bool {
	if grid == nil || startIndex < 0 || requiredSlots < 1 {
		return false
	}
	if startIndex+requiredSlots > len(grid.Slots) {
		return false
	}
	for i := startIndex; i < startIndex+requiredSlots; i++ {
		if grid.Slots[i].Status != schedule.StatusAvailable {
			return false
		}
	}
	return true
}

// DescribeFailure explains why the run at startIndex is inadmissible.
// It returns nil when the run is admissible.
func DescribeFailure(grid *schedule.SlotGrid, startIndex, requiredSlots int) *FailureDetail {
	if CanSelect(grid, startIndex, requiredSlots) {
		return nil
	}

	detail := &FailureDetail{RequiredSlots: requiredSlots}
	if grid == nil || startIndex < 0 || requiredSlots < 1 {
		detail.InsufficientSlots = true
		return detail
	}

	// Lowest blocking index inside bounds wins; a run that only overruns the
	// grid reports the insufficient-remaining-slots condition instead.
	end := startIndex + requiredSlots
	if end > len(grid.Slots) {
		end = len(grid.Slots)
	}
	for i := startIndex; i < end; i++ {
		if grid.Slots[i].Status != schedule.StatusAvailable {
			detail.Index = i
			detail.SlotLabel = grid.Slots[i].StartTime + "–" + grid.Slots[i].EndTime
			detail.Status = grid.Slots[i].Status
			return detail
		}
	}

	detail.InsufficientSlots = true
	return detail
}

// Resolve computes the booking window for the run starting at startIndex.
// It re-validates against the supplied grid, which must be the freshest one
// available: slot state can change between initial selection and
// confirmation, so a previously admissible run may fail here with
// ErrSelectionNoLongerValid rather than return a stale window.
//
// On success the window length in minutes is exactly
// requiredSlots * grid.SlotDuration.
func Resolve(grid *schedule.SlotGrid, startIndex, requiredSlots int) (startTime, endTime string, err error) {
	if detail := DescribeFailure(grid, startIndex, requiredSlots); detail != nil {
		return "", "", apperror.Wrap(ErrSelectionNoLongerValid, ErrSelectionNoLongerValid.Code, detail.Message())
	}

	last := grid.Slots[startIndex+requiredSlots-1]
	return grid.Slots[startIndex].StartTime, last.EndTime, nil
}

// FindStartIndex locates the slot whose StartTime matches the given label,
// or -1 if absent. Used to re-anchor a previously chosen window on a freshly
// fetched grid.
func FindStartIndex(grid *schedule.SlotGrid, startTime string) int {
	if grid == nil {
		return -1
	}
	for i, s := range grid.Slots {
		if s.StartTime == startTime {
			return i
		}
	}
	return -1
}
