package response

import (
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              int64     `json:"id"`
	Reference       string    `json:"reference"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationHours   int32     `json:"duration_hours"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone"`
	Location        string    `json:"location"`
	Category        string    `json:"category"`
	PackageName     string    `json:"package_name"`
	PackagePrice    float64   `json:"package_price"`
	SpecialRequests string    `json:"special_requests"`
	Status          string    `json:"status"`
	AdminNotes      *string   `json:"admin_notes,omitempty"`
	PaymentID       int64     `json:"payment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type PaymentSummaryResponse struct {
	Amount           float64 `json:"amount"`
	RemainingBalance float64 `json:"remaining_balance"`
	Type             string  `json:"type"`
	Method           string  `json:"method"`
	Status           string  `json:"status"`
}

type BookingDetailsResponse struct {
	BookingResponse
	Payment  *PaymentSummaryResponse `json:"payment,omitempty"`
	ProofURL *string                 `json:"proof_url,omitempty"`
}

type PaymentResponse struct {
	ID               int64     `json:"id"`
	BookingID        *int64    `json:"booking_id,omitempty"`
	Amount           float64   `json:"amount"`
	RemainingBalance float64   `json:"remaining_balance"`
	Type             string    `json:"type"`
	Method           string    `json:"method"`
	Status           string    `json:"status"`
	PaidAt           time.Time `json:"paid_at"`
}

type CreateBookingResponse struct {
	BookingID int64  `json:"booking_id"`
	PaymentID int64  `json:"payment_id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Replayed  bool   `json:"replayed,omitempty"`
}

func cents(v int64) float64 { return float64(v) / 100 }

// FromBookingRM copies the matching fields and converts money to major units.
func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	resp.PackagePrice = cents(rm.PackagePriceCents)
	return &resp
}

func FromBookingRMs(rms []*readmodel.BookingRM) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingRM(rm)
	}
	return out
}

func FromBookingDetailsRM(rm *readmodel.BookingDetailsRM) *BookingDetailsResponse {
	resp := &BookingDetailsResponse{
		BookingResponse: *FromBookingRM(&rm.BookingRM),
		ProofURL:        rm.ProofURL,
	}
	if p := rm.Payment; p != nil {
		resp.Payment = &PaymentSummaryResponse{
			Amount:           cents(p.AmountCents),
			RemainingBalance: cents(p.RemainingCents),
			Type:             p.Type,
			Method:           p.Method,
			Status:           p.Status,
		}
	}
	return resp
}

func FromPaymentRMs(rms []*readmodel.PaymentRM) []*PaymentResponse {
	out := make([]*PaymentResponse, len(rms))
	for i, rm := range rms {
		var resp PaymentResponse
		_ = copier.Copy(&resp, rm)
		resp.Amount = cents(rm.AmountCents)
		resp.RemainingBalance = cents(rm.RemainingCents)
		out[i] = &resp
	}
	return out
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              int64(b.ID()),
		Reference:       b.Reference().String(),
		Date:            b.Date().String(),
		StartTime:       b.Slot().Start().String(),
		EndTime:         b.Slot().End().String(),
		DurationHours:   int32(b.DurationHours()),
		GuestName:       b.Guest().Name(),
		GuestEmail:      b.Guest().Email(),
		GuestPhone:      b.Guest().Phone(),
		Location:        b.Details().Location(),
		Category:        b.Details().Category(),
		PackageName:     b.Details().PackageName(),
		PackagePrice:    b.Details().PackagePrice().Float64(),
		SpecialRequests: b.Details().SpecialRequests(),
		Status:          b.Status().String(),
		AdminNotes:      b.AdminNotes(),
		PaymentID:       int64(b.PaymentID()),
		CreatedAt:       b.CreatedAt(),
	}
}

func FromCreateResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID: int64(r.BookingID),
		PaymentID: int64(r.PaymentID),
		Reference: r.Reference.String(),
		Status:    r.Status.String(),
		Replayed:  r.Replayed,
	}
}
