package converter

import (
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/payment"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		BookingReference:  b.Reference().String(),
		GuestName:         b.Guest().Name(),
		GuestEmail:        b.Guest().Email(),
		GuestPhone:        b.Guest().Phone(),
		BookingDate:       DateToPgtype(b.Date()),
		BookingTimeStart:  ClockTimeToPgtype(b.Slot().Start()),
		BookingTimeEnd:    ClockTimeToPgtype(b.Slot().End()),
		BookingHours:      pgconv.IntToInt32(b.DurationHours()),
		Location:          b.Details().Location(),
		CategoryName:      b.Details().Category(),
		PackageName:       b.Details().PackageName(),
		PackagePriceCents: b.Details().PackagePrice().Cents(),
		SpecialRequests:   b.Details().SpecialRequests(),
		BookingStatus:     b.Status().String(),
		PaymentID:         int64(b.PaymentID()),
		PaymentProof:      pgconv.StringPtrToPgtype(b.ProofRef()),
	}
}

func BookingToUpdateDetailsParams(b *booking.Booking) sqlc.UpdateBookingDetailsParams {
	return sqlc.UpdateBookingDetailsParams{
		BookingID:         int64(b.ID()),
		GuestName:         b.Guest().Name(),
		GuestPhone:        b.Guest().Phone(),
		Location:          b.Details().Location(),
		CategoryName:      b.Details().Category(),
		PackageName:       b.Details().PackageName(),
		PackagePriceCents: b.Details().PackagePrice().Cents(),
		SpecialRequests:   b.Details().SpecialRequests(),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := SlotFromPgtype(row.BookingTimeStart, row.BookingTimeEnd)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		booking.ID(row.BookingID),
		booking.ReconstructReference(row.BookingReference),
		DateFromPgtype(row.BookingDate),
		slot,
		int(row.BookingHours),
		booking.ReconstructGuest(row.GuestName, row.GuestEmail, row.GuestPhone),
		booking.ReconstructDetails(
			row.Location,
			row.CategoryName,
			row.PackageName,
			payment.Money(row.PackagePriceCents),
			row.SpecialRequests,
		),
		booking.Status(row.BookingStatus),
		pgconv.StringPtrFromPgtype(row.AdminNotes),
		payment.ID(row.PaymentID),
		pgconv.StringPtrFromPgtype(row.PaymentProof),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
