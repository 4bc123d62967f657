package http

import (
	"time"

	"github.com/MNhat168/sport-zone-fe-sub005/internal/booking"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/conflict"
	fieldHttp "github.com/MNhat168/sport-zone-fe-sub005/internal/field/http"
	"github.com/MNhat168/sport-zone-fe-sub005/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	CourtID       string     `form:"court_id" binding:"omitempty,uuid"`
	FieldID       string     `form:"field_id" binding:"omitempty,uuid"`
	Status        string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	StartTimeFrom *time.Time `form:"start_time_from" time_format:"2006-01-02T15:04:05Z07:00"`
	StartTimeTo   *time.Time `form:"start_time_to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy        string     `form:"sort_by" binding:"omitempty,oneof=start_time end_time created_at status"`
}

type BookingResponse struct {
	ID            string             `json:"id"`
	Court         fieldHttp.CourtTag `json:"court"`
	Field         fieldHttp.FieldTag `json:"field"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	StartTime     time.Time          `json:"start_time"`
	EndTime       time.Time          `json:"end_time"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Court:         fieldHttp.CourtTag{ID: b.CourtID, Name: b.CourtName},
		Field:         fieldHttp.FieldTag{ID: b.FieldID, Name: b.FieldName},
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	CourtID       string    `json:"court_id" binding:"required,uuid"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	EndTime       time.Time `json:"end_time" binding:"required"`
}

type UpdateBookingRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    *string    `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// RecurringPatternBody is the weekly pattern shared by the plan and submit
// endpoints.
type RecurringPatternBody struct {
	CourtID         string `json:"court_id" binding:"required,uuid"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	StartDate       string `json:"start_date" binding:"required,datetime=2006-01-02"`
	Weeks           int    `json:"weeks" binding:"required,min=1,max=52"`
	StartTime       string `json:"start_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
}

func (b RecurringPatternBody) toRequest() (booking.RecurringRequest, error) {
	startDate, err := time.Parse("2006-01-02", b.StartDate)
	if err != nil {
		return booking.RecurringRequest{}, err
	}
	return booking.RecurringRequest{
		CourtID:         b.CourtID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		StartDate:       startDate,
		Weeks:           b.Weeks,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
	}, nil
}

// ResolutionBody is one per-date remedy in a submit request.
type ResolutionBody struct {
	Type         string `json:"type" binding:"required,oneof=skip switch reschedule"`
	CourtID      string `json:"court_id" binding:"omitempty,uuid"`
	NewStartTime string `json:"new_start_time"`
	NewEndTime   string `json:"new_end_time"`
}

func (r ResolutionBody) toResolution() conflict.Resolution {
	switch conflict.ResolutionType(r.Type) {
	case conflict.TypeSwitch:
		return conflict.Switch(r.CourtID)
	case conflict.TypeReschedule:
		return conflict.Reschedule(r.CourtID, r.NewStartTime, r.NewEndTime)
	default:
		return conflict.Skip()
	}
}

type SubmitRecurringRequest struct {
	RecurringPatternBody
	Resolutions map[string]ResolutionBody `json:"resolutions"`
}

type ConflictResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

type CourtOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecurringPlanResponse reports the expanded series, its conflicting dates,
// and the courts a conflict could switch to.
type RecurringPlanResponse struct {
	Dates           []string              `json:"dates"`
	Conflicts       []ConflictResponse    `json:"conflicts"`
	AlternateCourts []CourtOptionResponse `json:"alternate_courts"`
}

func NewRecurringPlanResponse(plan *booking.RecurringPlan) RecurringPlanResponse {
	resp := RecurringPlanResponse{
		Dates:           plan.Dates,
		Conflicts:       make([]ConflictResponse, len(plan.Conflicts)),
		AlternateCourts: make([]CourtOptionResponse, len(plan.Courts)),
	}
	for i, item := range plan.Conflicts {
		resp.Conflicts[i] = ConflictResponse{Date: item.Date, Reason: item.Reason}
	}
	for i, court := range plan.Courts {
		resp.AlternateCourts[i] = CourtOptionResponse{ID: court.ID, Name: court.Name}
	}
	return resp
}
