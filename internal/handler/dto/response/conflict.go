package response

import (
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/schedule"
)

type ConflictingBooking struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type ConflictResponse struct {
	HasConflicts bool                        `json:"has_conflicts"`
	Bookings     []ConflictingBooking        `json:"bookings"`
	Ranges       []*UnavailableRangeResponse `json:"ranges"`
}

func FromConflicts(bookings []*booking.Booking, ranges []schedule.UnavailableRange) *ConflictResponse {
	resp := &ConflictResponse{
		Bookings: make([]ConflictingBooking, len(bookings)),
		Ranges:   FromUnavailableRanges(ranges),
	}
	for i, b := range bookings {
		resp.Bookings[i] = ConflictingBooking{
			ID:        int64(b.ID()),
			Reference: b.Reference().String(),
			Date:      b.Date().String(),
			StartTime: b.Slot().Start().String(),
			EndTime:   b.Slot().End().String(),
			Status:    b.Status().String(),
		}
	}
	resp.HasConflicts = len(bookings) > 0 || len(ranges) > 0
	return resp
}

func FromConflictResult(res conflict.Result) *ConflictResponse {
	return FromConflicts(res.Bookings, res.Ranges)
}
