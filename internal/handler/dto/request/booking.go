package request

import (
	"strings"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/usecase/commands"
)

// Money amounts on the wire are major units (pesos), e.g. 1500.50.
type PaymentRequest struct {
	Amount      float64 `json:"amount" binding:"gt=0"`
	Type        string  `json:"type" binding:"required,oneof=FULL DOWNPAYMENT"`
	Method      string  `json:"method" binding:"required,max=50"`
	GCashNumber *string `json:"gcash_number,omitempty" binding:"omitempty,max=20"`
}

type CreateBookingRequest struct {
	Reference       string         `json:"reference" binding:"omitempty,max=50"`
	Date            string         `json:"date" binding:"required,civildate"`
	StartTime       string         `json:"start_time" binding:"required,hhmm"`
	EndTime         string         `json:"end_time" binding:"required,hhmm"`
	GuestName       string         `json:"guest_name" binding:"required,max=255"`
	GuestEmail      string         `json:"guest_email" binding:"required,email"`
	GuestPhone      string         `json:"guest_phone" binding:"required,max=50"`
	Location        string         `json:"location" binding:"max=255"`
	Category        string         `json:"category" binding:"max=255"`
	PackageName     string         `json:"package_name" binding:"max=255"`
	PackagePrice    float64        `json:"package_price" binding:"gte=0"`
	SpecialRequests string         `json:"special_requests" binding:"max=2000"`
	Payment         PaymentRequest `json:"payment" binding:"required"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	price, err := payment.MoneyFromFloat(r.PackagePrice)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	amount, err := payment.MoneyFromFloat(r.Payment.Amount)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		Reference:       strings.TrimSpace(r.Reference),
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		Location:        r.Location,
		Category:        r.Category,
		PackageName:     r.PackageName,
		PackagePrice:    price,
		SpecialRequests: r.SpecialRequests,
		Payment: commands.PaymentInput{
			Amount:      amount,
			Type:        r.Payment.Type,
			Method:      r.Payment.Method,
			GCashNumber: r.Payment.GCashNumber,
		},
	}, nil
}

// ManualBookingRequest relaxes the guest fields: missing email falls back to
// the configured placeholder address.
type ManualBookingRequest struct {
	Date            string         `json:"date" binding:"required,civildate"`
	StartTime       string         `json:"start_time" binding:"required,hhmm"`
	EndTime         string         `json:"end_time" binding:"required,hhmm"`
	GuestName       string         `json:"guest_name" binding:"required,max=255"`
	GuestEmail      string         `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      string         `json:"guest_phone" binding:"required,max=50"`
	Location        string         `json:"location" binding:"max=255"`
	Category        string         `json:"category" binding:"max=255"`
	PackageName     string         `json:"package_name" binding:"max=255"`
	PackagePrice    float64        `json:"package_price" binding:"gte=0"`
	SpecialRequests string         `json:"special_requests" binding:"max=2000"`
	Payment         PaymentRequest `json:"payment" binding:"required"`
}

func (r ManualBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	return CreateBookingRequest{
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		Location:        r.Location,
		Category:        r.Category,
		PackageName:     r.PackageName,
		PackagePrice:    r.PackagePrice,
		SpecialRequests: r.SpecialRequests,
		Payment:         r.Payment,
	}.ToInput()
}

type TimeRangeRequest struct {
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
}

type ApproveRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

// UpdateBookingRequest is a partial update; absent fields are kept.
type UpdateBookingRequest struct {
	GuestName       *string  `json:"guest_name" binding:"omitempty,max=255"`
	GuestPhone      *string  `json:"guest_phone" binding:"omitempty,max=50"`
	Location        *string  `json:"location" binding:"omitempty,max=255"`
	Category        *string  `json:"category" binding:"omitempty,max=255"`
	PackageName     *string  `json:"package_name" binding:"omitempty,max=255"`
	PackagePrice    *float64 `json:"package_price" binding:"omitempty,gte=0"`
	SpecialRequests *string  `json:"special_requests" binding:"omitempty,max=2000"`
}

func (r UpdateBookingRequest) ToPatch() (booking.DetailsPatch, error) {
	p := booking.DetailsPatch{
		GuestName:       r.GuestName,
		GuestPhone:      r.GuestPhone,
		Location:        r.Location,
		Category:        r.Category,
		PackageName:     r.PackageName,
		SpecialRequests: r.SpecialRequests,
	}
	if r.PackagePrice != nil {
		price, err := payment.MoneyFromFloat(*r.PackagePrice)
		if err != nil {
			return booking.DetailsPatch{}, err
		}
		p.PackagePrice = &price
	}
	return p, nil
}

type ConflictQuery struct {
	Date      string `form:"date" binding:"required,civildate"`
	StartTime string `form:"start" binding:"required,hhmm"`
	EndTime   string `form:"end" binding:"required,hhmm"`
	ExcludeID *int64 `form:"excludeId" binding:"omitempty,gt=0"`
}

func (q ConflictQuery) Exclude() *booking.ID {
	if q.ExcludeID == nil {
		return nil
	}
	id := booking.ID(*q.ExcludeID)
	return &id
}
