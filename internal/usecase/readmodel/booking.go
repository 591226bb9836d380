package readmodel

import "time"

type BookingRM struct {
	ID                int64     `json:"id"`
	Reference         string    `json:"reference"`
	Date              string    `json:"date"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	DurationHours     int32     `json:"duration_hours"`
	GuestName         string    `json:"guest_name"`
	GuestEmail        string    `json:"guest_email"`
	GuestPhone        string    `json:"guest_phone"`
	Location          string    `json:"location"`
	Category          string    `json:"category"`
	PackageName       string    `json:"package_name"`
	PackagePriceCents int64     `json:"package_price_cents"`
	SpecialRequests   string    `json:"special_requests"`
	Status            string    `json:"status"`
	AdminNotes        *string   `json:"admin_notes,omitempty"`
	PaymentID         int64     `json:"payment_id"`
	PaymentProof      *string   `json:"payment_proof,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type PaymentSummaryRM struct {
	AmountCents    int64   `json:"amount_cents"`
	RemainingCents int64   `json:"remaining_cents"`
	Type           string  `json:"type"`
	Method         string  `json:"method"`
	Status         string  `json:"status"`
	Proof          *string `json:"proof,omitempty"`
}

// BookingDetailsRM is a booking joined with its payment. ProofURL is filled
// by the query layer.
type BookingDetailsRM struct {
	BookingRM
	Payment  *PaymentSummaryRM `json:"payment,omitempty"`
	ProofURL *string           `json:"proof_url,omitempty"`
}

type PaymentRM struct {
	ID             int64     `json:"id"`
	BookingID      *int64    `json:"booking_id,omitempty"`
	AmountCents    int64     `json:"amount_cents"`
	RemainingCents int64     `json:"remaining_cents"`
	Type           string    `json:"type"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	Proof          *string   `json:"proof,omitempty"`
	PaidAt         time.Time `json:"paid_at"`
}
