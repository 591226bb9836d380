package converter

import (
	"studio-booking/internal/domain/payment"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		AmountCents:    p.Amount().Cents(),
		RemainingCents: p.RemainingBalance().Cents(),
		PaymentType:    p.Type().String(),
		PaymentMethod:  p.Method(),
		PaymentStatus:  p.Status().String(),
		GcashNumber:    pgconv.StringPtrToPgtype(p.GCashNumber()),
		PaymentProof:   pgconv.StringPtrToPgtype(p.ProofRef()),
		PaymentDate:    pgconv.TimeToPgtype(p.PaidAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) *payment.Payment {
	return payment.Reconstruct(
		payment.ID(row.PaymentID),
		pgconv.Int64PtrFromPgtype(row.BookingID),
		payment.Money(row.AmountCents),
		payment.Money(row.RemainingCents),
		payment.Type(row.PaymentType),
		row.PaymentMethod,
		payment.Status(row.PaymentStatus),
		pgconv.StringPtrFromPgtype(row.GcashNumber),
		pgconv.StringPtrFromPgtype(row.PaymentProof),
		pgconv.TimeFromPgtype(row.PaymentDate),
	)
}
