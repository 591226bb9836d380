package commands

import (
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/payment"
)

// Write-side inputs carry caller values as given; the commands parse and
// validate them before anything is written.
type CreateBookingInput struct {
	Reference       string
	Date            string
	StartTime       string
	EndTime         string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Location        string
	Category        string
	PackageName     string
	PackagePrice    payment.Money
	SpecialRequests string
	Payment         PaymentInput
}

type PaymentInput struct {
	Amount      payment.Money
	Type        string
	Method      string
	GCashNumber *string
}

type CreateBookingResult struct {
	BookingID booking.ID
	PaymentID payment.ID
	Reference booking.Reference
	Status    booking.Status
	// Replayed is set when a caller-supplied reference matched an existing
	// booking for the same slot and guest.
	Replayed bool
}

type Options struct {
	ReferenceRetries   int
	DefaultManualEmail string
}

func DefaultOptions() Options {
	return Options{
		ReferenceRetries:   3,
		DefaultManualEmail: booking.DefaultManualEmail,
	}
}
