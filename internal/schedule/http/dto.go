package http

import (
	"github.com/MNhat168/sport-zone-fe-sub005/internal/schedule"
)

// GetScheduleRequest defines query parameters for the day-schedule endpoint.
type GetScheduleRequest struct {
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	Duration int    `form:"duration" binding:"required,min=1"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// ScheduleResponse is the day-schedule payload consumed by booking views.
type ScheduleResponse struct {
	AllSlots      []SlotResponse `json:"all_slots"`
	SlotDuration  int            `json:"slot_duration"`
	RequiredSlots int            `json:"required_slots"`
}

func NewScheduleResponse(grid *schedule.SlotGrid) ScheduleResponse {
	slots := make([]SlotResponse, len(grid.Slots))
	for i, s := range grid.Slots {
		slots[i] = SlotResponse{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Status:    string(s.Status),
			Reason:    s.Reason,
		}
	}
	return ScheduleResponse{
		AllSlots:      slots,
		SlotDuration:  grid.SlotDuration,
		RequiredSlots: grid.RequiredSlots,
	}
}
