package repository

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error)
	GetPayment(ctx context.Context, db sqlc.DBTX, paymentID int64) (sqlc.Payments, error)
	GetPaymentForUpdate(ctx context.Context, db sqlc.DBTX, paymentID int64) (sqlc.Payments, error)
	LinkPaymentToBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkPaymentToBookingParams) (int64, error)
	UpdatePaymentProof(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentProofParams) (int64, error)
	UnlinkPaymentsFromBooking(ctx context.Context, db sqlc.DBTX, bookingID pgtype.Int8) (int64, error)
	DeletePayment(ctx context.Context, db sqlc.DBTX, paymentID int64) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// CreateOrphan inserts the payment with no booking yet.
func (r *PaymentRepository) CreateOrphan(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (payment.ID, error) {
	row, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create payment", err)
	}
	return payment.ID(row.PaymentID), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id payment.ID) (*payment.Payment, error) {
	row, err := r.queries.GetPayment(ctx, tx, int64(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id payment.ID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentForUpdate(ctx, tx, int64(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func (r *PaymentRepository) Link(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	n, err := r.queries.LinkPaymentToBooking(ctx, tx, sqlc.LinkPaymentToBookingParams{
		PaymentID:      int64(p.ID()),
		BookingID:      pgconv.Int64PtrToPgtype(p.BookingID()),
		RemainingCents: p.RemainingBalance().Cents(),
	})
	return affected("failed to link payment", n, err)
}

func (r *PaymentRepository) UpdateProof(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	n, err := r.queries.UpdatePaymentProof(ctx, tx, sqlc.UpdatePaymentProofParams{
		PaymentID:     int64(p.ID()),
		PaymentProof:  pgconv.StringPtrToPgtype(p.ProofRef()),
		PaymentStatus: p.Status().String(),
	})
	return affected("failed to update payment proof", n, err)
}

// UnlinkFromBooking clears the booking reference so the booking row can be
// deleted. Zero rows is fine: legacy bookings may have no linked payment.
func (r *PaymentRepository) UnlinkFromBooking(ctx context.Context, tx sqlc.DBTX, bookingID booking.ID) error {
	if _, err := r.queries.UnlinkPaymentsFromBooking(ctx, tx, pgconv.Int64ToPgtype(int64(bookingID))); err != nil {
		return infra.WrapRepoErr("failed to unlink payment", err)
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id payment.ID) error {
	n, err := r.queries.DeletePayment(ctx, tx, int64(id))
	return affected("failed to delete payment", n, err)
}
