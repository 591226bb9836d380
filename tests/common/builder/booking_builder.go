//go:build unit || e2e

package builder

import (
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/readmodel"
)

type BookingBuilder struct {
	ID              int64
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
	PackagePrice    int64
	SpecialRequests string
	Status          booking.Status
	AdminNotes      *string
	PaymentID       int64
	ProofRef        *string
	CreatedAt       time.Time

	PaymentAmount int64
	PaymentType   string
	PaymentMethod string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            1,
		Reference:     "BK-TEST0001",
		Date:          "2024-06-01",
		StartTime:     "10:00",
		EndTime:       "12:00",
		GuestName:     "Maria Santos",
		GuestEmail:    "maria@example.com",
		GuestPhone:    "+639171234567",
		Location:      "Studio A",
		Category:      "Portrait",
		PackageName:   "Basic",
		PackagePrice:  300000,
		Status:        booking.StatusPending,
		PaymentID:     1,
		CreatedAt:     time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
		PaymentAmount: 100000,
		PaymentType:   "DOWNPAYMENT",
		PaymentMethod: "GCASH",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildNew goes through booking.New, so it validates like a fresh insert.
func (b *BookingBuilder) BuildNew() (*booking.Booking, error) {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	slot, err := schedule.ParseTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	ref, err := booking.NewReference(b.Reference)
	if err != nil {
		return nil, err
	}
	guest, err := booking.NewGuest(b.GuestName, b.GuestEmail, b.GuestPhone)
	if err != nil {
		return nil, err
	}
	details, err := booking.NewDetails(b.Location, b.Category, b.PackageName, payment.Money(b.PackagePrice), b.SpecialRequests)
	if err != nil {
		return nil, err
	}
	return booking.New(booking.NewParams{
		Reference: ref,
		Date:      date,
		Slot:      slot,
		Guest:     guest,
		Details:   details,
		Status:    b.Status,
		PaymentID: payment.ID(b.PaymentID),
		ProofRef:  b.ProofRef,
		CreatedAt: b.CreatedAt,
	})
}

// MustDomain reconstructs a stored booking in any status. It panics on
// unparseable dates or times.
func (b *BookingBuilder) MustDomain() *booking.Booking {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	slot, err := schedule.ParseTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(
		booking.ID(b.ID),
		booking.ReconstructReference(b.Reference),
		date,
		slot,
		slot.Hours(),
		booking.ReconstructGuest(b.GuestName, b.GuestEmail, b.GuestPhone),
		booking.ReconstructDetails(b.Location, b.Category, b.PackageName, payment.Money(b.PackagePrice), b.SpecialRequests),
		b.Status,
		b.AdminNotes,
		payment.ID(b.PaymentID),
		b.ProofRef,
		b.CreatedAt,
	)
}

// MustPayment is the payment row linked to this booking.
func (b *BookingBuilder) MustPayment() *payment.Payment {
	t, err := payment.ParseType(b.PaymentType)
	if err != nil {
		panic(err)
	}
	remaining, err := payment.RemainingBalance(t, payment.Money(b.PackagePrice), payment.Money(b.PaymentAmount))
	if err != nil {
		panic(err)
	}
	bookingID := b.ID
	status := payment.StatusPending
	if b.ProofRef != nil {
		status = payment.StatusCompleted
	}
	return payment.Reconstruct(
		payment.ID(b.PaymentID),
		&bookingID,
		payment.Money(b.PaymentAmount),
		remaining,
		t,
		b.PaymentMethod,
		status,
		nil,
		b.ProofRef,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Reference:       b.Reference,
		Date:            b.Date,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		Location:        b.Location,
		Category:        b.Category,
		PackageName:     b.PackageName,
		PackagePrice:    payment.Money(b.PackagePrice),
		SpecialRequests: b.SpecialRequests,
		Payment: commands.PaymentInput{
			Amount: payment.Money(b.PaymentAmount),
			Type:   b.PaymentType,
			Method: b.PaymentMethod,
		},
	}
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Reference:       b.Reference,
		Date:            b.Date,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		Location:        b.Location,
		Category:        b.Category,
		PackageName:     b.PackageName,
		PackagePrice:    payment.Money(b.PackagePrice).Float64(),
		SpecialRequests: b.SpecialRequests,
		Payment: reqdto.PaymentRequest{
			Amount: payment.Money(b.PaymentAmount).Float64(),
			Type:   b.PaymentType,
			Method: b.PaymentMethod,
		},
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	d := b.MustDomain()
	return sqlc.Bookings{
		BookingID:         b.ID,
		BookingReference:  b.Reference,
		GuestName:         b.GuestName,
		GuestEmail:        b.GuestEmail,
		GuestPhone:        b.GuestPhone,
		BookingDate:       converter.DateToPgtype(d.Date()),
		BookingTimeStart:  converter.ClockTimeToPgtype(d.Slot().Start()),
		BookingTimeEnd:    converter.ClockTimeToPgtype(d.Slot().End()),
		BookingHours:      pgconv.IntToInt32(d.DurationHours()),
		Location:          b.Location,
		CategoryName:      b.Category,
		PackageName:       b.PackageName,
		PackagePriceCents: b.PackagePrice,
		SpecialRequests:   b.SpecialRequests,
		BookingStatus:     string(b.Status),
		AdminNotes:        pgconv.StringPtrToPgtype(b.AdminNotes),
		PaymentID:         b.PaymentID,
		PaymentProof:      pgconv.StringPtrToPgtype(b.ProofRef),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	d := b.MustDomain()
	return &readmodel.BookingRM{
		ID:                b.ID,
		Reference:         b.Reference,
		Date:              b.Date,
		StartTime:         d.Slot().Start().String(),
		EndTime:           d.Slot().End().String(),
		DurationHours:     pgconv.IntToInt32(d.DurationHours()),
		GuestName:         b.GuestName,
		GuestEmail:        b.GuestEmail,
		GuestPhone:        b.GuestPhone,
		Location:          b.Location,
		Category:          b.Category,
		PackageName:       b.PackageName,
		PackagePriceCents: b.PackagePrice,
		SpecialRequests:   b.SpecialRequests,
		Status:            string(b.Status),
		AdminNotes:        b.AdminNotes,
		PaymentID:         b.PaymentID,
		PaymentProof:      b.ProofRef,
		CreatedAt:         b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithReference(ref string) *BookingBuilder {
	b.Reference = ref
	return b
}

func (b *BookingBuilder) WithoutReference() *BookingBuilder {
	b.Reference = ""
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithGuest(name, email, phone string) *BookingBuilder {
	b.GuestName = name
	b.GuestEmail = email
	b.GuestPhone = phone
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithPackagePrice(cents int64) *BookingBuilder {
	b.PackagePrice = cents
	return b
}

func (b *BookingBuilder) WithPayment(amountCents int64, paymentType, method string) *BookingBuilder {
	b.PaymentAmount = amountCents
	b.PaymentType = paymentType
	b.PaymentMethod = method
	return b
}

func (b *BookingBuilder) WithPaymentID(id int64) *BookingBuilder {
	b.PaymentID = id
	return b
}

func (b *BookingBuilder) WithProof(ref string) *BookingBuilder {
	b.ProofRef = &ref
	return b
}

type RangeBuilder struct {
	ID        int64
	Date      string
	StartTime string
	EndTime   string
}

func NewRangeBuilder() *RangeBuilder {
	return &RangeBuilder{ID: 1, Date: "2024-06-01", StartTime: "13:00", EndTime: "14:00"}
}

func (r *RangeBuilder) WithSlot(start, end string) *RangeBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *RangeBuilder) WithDate(date string) *RangeBuilder {
	r.Date = date
	return r
}

func (r *RangeBuilder) MustDomain() schedule.UnavailableRange {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		panic(err)
	}
	slot, err := schedule.ParseTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		panic(err)
	}
	return schedule.ReconstructUnavailableRange(r.ID, date, slot)
}

func (r *RangeBuilder) BuildInfra() sqlc.UnavailableTimeRanges {
	d := r.MustDomain()
	return sqlc.UnavailableTimeRanges{
		ID:        r.ID,
		Date:      converter.DateToPgtype(d.Date()),
		StartTime: converter.ClockTimeToPgtype(d.Slot().Start()),
		EndTime:   converter.ClockTimeToPgtype(d.Slot().End()),
		Status:    schedule.StatusUnavailable,
	}
}
