//go:build unit

package commands_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/ptr"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/shared"
	"studio-booking/tests/common/builder"
	"studio-booking/tests/common/memstore"
	sharedmock "studio-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow  = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	adminUser = shared.NewPrincipal(uuid.New(), admin.RoleAdmin)
	staffUser = shared.NewPrincipal(uuid.New(), admin.RoleStaff)
	errBoom   = errors.New("boom")
	generated = regexp.MustCompile(`^BK-[A-Z0-9]{8}$`)
	createOps = []string{
		memstore.OpPaymentCreate,
		memstore.OpLockDate,
		memstore.OpBookingOverlaps,
		memstore.OpScheduleList,
		memstore.OpBookingCreate,
		memstore.OpPaymentLink,
	}
)

type fixture struct {
	store  *memstore.Store
	proofs *sharedmock.MockProofStore
	cmds   commands.BookingCommands

	mu     sync.Mutex
	events []shared.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:  memstore.New(),
		proofs: sharedmock.NewMockProofStore(ctrl),
	}
	notifier := sharedmock.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev shared.Event) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, ev)
			return nil
		}).AnyTimes()

	f.cmds = commands.NewBookingCommands(f.store, f.proofs, notifier, clock.NewFixedClock(fixedNow), commands.DefaultOptions())
	return f
}

func (f *fixture) kinds() []shared.EventKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]shared.EventKind, len(f.events))
	for i, ev := range f.events {
		out[i] = ev.Kind
	}
	return out
}

// seed stores a booking and its linked payment as if created earlier.
func (f *fixture) seed(b *builder.BookingBuilder) *booking.Booking {
	f.store.SeedPayment(b.MustPayment())
	return f.store.SeedBooking(b.MustDomain())
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("writes payment, booking and link in one transaction", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.Equal(t, booking.StatusPending, res.Status)
		assert.Equal(t, "BK-TEST0001", res.Reference.String())

		b, ok := f.store.Booking(res.BookingID)
		require.True(t, ok)
		p, ok := f.store.Payment(res.PaymentID)
		require.True(t, ok)

		assert.Equal(t, p.ID(), b.PaymentID())
		require.NotNil(t, p.BookingID())
		assert.Equal(t, int64(b.ID()), *p.BookingID())
		assert.Equal(t, payment.Money(200000), p.RemainingBalance())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, 2, b.DurationHours())

		assert.Equal(t, createOps, f.store.Ops())
		assert.Equal(t, []string{"2024-06-01"}, f.store.LockedDates())
		assert.Equal(t, 1, f.store.Commits())
		assert.Equal(t, []shared.EventKind{shared.EventBookingCreated}, f.kinds())
	})

	t.Run("generates a reference when none is supplied", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithoutReference().BuildInput())
		require.NoError(t, err)
		assert.Regexp(t, generated, res.Reference.String())
	})

	t.Run("full payment leaves no balance", func(t *testing.T) {
		f := newFixture(t)

		in := builder.NewBookingBuilder().WithPayment(300000, "FULL", "cash").BuildInput()
		res, err := f.cmds.CreateBooking(ctx, in)
		require.NoError(t, err)

		p, _ := f.store.Payment(res.PaymentID)
		assert.Equal(t, payment.Money(0), p.RemainingBalance())
		assert.Equal(t, "CASH", p.Method())
	})

	t.Run("conflict rolls back the payment", func(t *testing.T) {
		f := newFixture(t)
		existing := f.seed(builder.NewBookingBuilder().WithReference("BK-EXIST001").
			WithSlot("09:00", "11:00").WithStatus(booking.StatusConfirmed))

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithSlot("10:00", "12:00").BuildInput())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))

		var ce *shared.ConflictError
		require.True(t, errs.As(err, &ce))
		require.Len(t, ce.Bookings, 1)
		assert.Equal(t, existing.Reference(), ce.Bookings[0].Reference())

		assert.Len(t, f.store.Payments(), 1, "only the seeded payment may remain")
		assert.Len(t, f.store.Bookings(), 1)
		assert.Zero(t, f.store.Commits())
		assert.Empty(t, f.kinds())
	})

	t.Run("cancelled bookings free their slot", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewBookingBuilder().WithReference("BK-CANCEL01").WithStatus(booking.StatusCancelled))

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		assert.NoError(t, err)
	})

	t.Run("unavailable range blocks the slot", func(t *testing.T) {
		f := newFixture(t)
		f.store.SeedRange(builder.NewRangeBuilder().WithSlot("11:00", "12:00").MustDomain())

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		var ce *shared.ConflictError
		require.True(t, errs.As(err, &ce))
		assert.Empty(t, ce.Bookings)
		assert.Len(t, ce.Ranges, 1)
		assert.Empty(t, f.store.Payments())
	})

	t.Run("end before start is rejected, not wrapped past midnight", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithSlot("22:00", "06:00").BuildInput())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, schedule.ErrInvalidTimeSlot))
		assert.Empty(t, f.store.Ops(), "nothing may be written")
	})

	t.Run("empty slot is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithSlot("10:00", "10:00").BuildInput())
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("downpayment above the package price is rejected", func(t *testing.T) {
		f := newFixture(t)

		in := builder.NewBookingBuilder().WithPayment(400000, "DOWNPAYMENT", "GCASH").BuildInput()
		_, err := f.cmds.CreateBooking(ctx, in)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, payment.ErrAmountExceedsDue))
		assert.Empty(t, f.store.Ops())
	})

	t.Run("failed link leaves neither row behind", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailOn(memstore.OpPaymentLink, errBoom)

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorage))
		assert.Empty(t, f.store.Payments())
		assert.Empty(t, f.store.Bookings())
	})

	t.Run("failed booking insert leaves no orphan payment", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailOn(memstore.OpBookingCreate, errBoom)

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		require.Error(t, err)
		assert.Empty(t, f.store.Payments())
	})

	t.Run("unreadable calendar is an error, not a free slot", func(t *testing.T) {
		f := newFixture(t)
		f.store.FailOn(memstore.OpBookingOverlaps, errBoom)

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorage))
		assert.False(t, errs.Is(err, errs.ErrConflict))
		assert.Empty(t, f.store.Bookings())
	})

	t.Run("repeated reference for the same request is replayed", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().BuildInput()

		first, err := f.cmds.CreateBooking(ctx, in)
		require.NoError(t, err)
		second, err := f.cmds.CreateBooking(ctx, in)
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.BookingID, second.BookingID)
		assert.Equal(t, first.PaymentID, second.PaymentID)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.Payments(), 1)
		assert.Equal(t, []shared.EventKind{shared.EventBookingCreated}, f.kinds())
	})

	t.Run("losing the insert race to the same request is a replay", func(t *testing.T) {
		f := newFixture(t)
		winner := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = 50
			b.PaymentID = 50
		})
		f.store.RaceOn(memstore.OpBookingCreate, winner.MustDomain(), winner.MustPayment())

		res, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, booking.ID(50), res.BookingID)
		assert.Equal(t, payment.ID(50), res.PaymentID)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.Payments(), 1, "the losing payment is rolled back")
		assert.Empty(t, f.kinds())
	})

	t.Run("losing the insert race to another request conflicts", func(t *testing.T) {
		f := newFixture(t)
		winner := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = 50
			b.PaymentID = 50
			b.GuestEmail = "someone.else@example.com"
		})
		f.store.RaceOn(memstore.OpBookingCreate, winner.MustDomain(), winner.MustPayment())

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("reference reused for another request conflicts", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		require.NoError(t, err)
		_, err = f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithSlot("14:00", "15:00").BuildInput())
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("concurrent requests for one slot admit exactly one", func(t *testing.T) {
		f := newFixture(t)
		const n = 8

		var wg sync.WaitGroup
		results := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithoutReference().BuildInput())
			}(i)
		}
		wg.Wait()

		var ok, conflicts int
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errs.Is(err, errs.ErrConflict):
				conflicts++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, n-1, conflicts)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.Payments(), 1)
	})
}

func TestCreateBookingCalendarScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	a := f.seed(builder.NewBookingBuilder().WithReference("BK-SCENE00A").
		WithSlot("09:00", "11:00").WithStatus(booking.StatusConfirmed))
	f.store.SeedRange(builder.NewRangeBuilder().WithSlot("13:00", "15:00").MustDomain())

	// B overlaps A
	_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithReference("BK-SCENE00B").
		WithSlot("10:00", "12:00").BuildInput())
	var ce *shared.ConflictError
	require.True(t, errs.As(err, &ce))
	require.Len(t, ce.Bookings, 1)
	assert.Equal(t, a.ID(), ce.Bookings[0].ID())

	// C starts when A ends
	_, err = f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithReference("BK-SCENE00C").
		WithSlot("11:00", "12:00").BuildInput())
	require.NoError(t, err)

	// D covers the blackout entirely
	_, err = f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().WithReference("BK-SCENE00D").
		WithSlot("12:00", "16:00").BuildInput())
	ce = nil
	require.True(t, errs.As(err, &ce))
	assert.Empty(t, ce.Bookings)
	require.Len(t, ce.Ranges, 1)
	assert.Equal(t, "13:00-15:00", ce.Ranges[0].Slot().String())
}

func TestCreateBookingWithProof(t *testing.T) {
	ctx := context.Background()

	t.Run("stored proof completes the payment", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.EXPECT().Exists(gomock.Any(), "proof.png").Return(true, nil)

		res, err := f.cmds.CreateBookingWithProof(ctx, builder.NewBookingBuilder().BuildInput(), "proof.png")
		require.NoError(t, err)

		b, _ := f.store.Booking(res.BookingID)
		p, _ := f.store.Payment(res.PaymentID)
		assert.Equal(t, "proof.png", ptr.Deref(b.ProofRef()))
		assert.Equal(t, "proof.png", ptr.Deref(p.ProofRef()))
		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("unknown proof is rejected before any write", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.EXPECT().Exists(gomock.Any(), "missing.png").Return(false, nil)

		_, err := f.cmds.CreateBookingWithProof(ctx, builder.NewBookingBuilder().BuildInput(), "missing.png")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, commands.ErrProofMissing))
		assert.Empty(t, f.store.Ops())
	})

	t.Run("empty proof reference", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.CreateBookingWithProof(ctx, builder.NewBookingBuilder().BuildInput(), " ")
		assert.True(t, errs.Is(err, commands.ErrProofRequired))
	})

	t.Run("proof store failure", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.EXPECT().Exists(gomock.Any(), "proof.png").Return(false, errBoom)

		_, err := f.cmds.CreateBookingWithProof(ctx, builder.NewBookingBuilder().BuildInput(), "proof.png")
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}

func TestCreateManualBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an admin", func(t *testing.T) {
		f := newFixture(t)
		for _, p := range []shared.Principal{shared.Anonymous(), staffUser} {
			_, err := f.cmds.CreateManualBooking(ctx, p, builder.NewBookingBuilder().BuildInput())
			assert.True(t, errs.Is(err, errs.ErrForbidden))
		}
		assert.Empty(t, f.store.Ops())
	})

	t.Run("confirmed and paid, with placeholder email", func(t *testing.T) {
		f := newFixture(t)
		in := builder.NewBookingBuilder().WithoutReference().BuildInput()
		in.GuestEmail = ""

		res, err := f.cmds.CreateManualBooking(ctx, adminUser, in)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, res.Status)

		b, _ := f.store.Booking(res.BookingID)
		p, _ := f.store.Payment(res.PaymentID)
		assert.Equal(t, booking.DefaultManualEmail, b.Guest().Email())
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("still checks the calendar", func(t *testing.T) {
		f := newFixture(t)
		f.seed(builder.NewBookingBuilder().WithReference("BK-EXIST001").WithStatus(booking.StatusConfirmed))

		_, err := f.cmds.CreateManualBooking(ctx, adminUser, builder.NewBookingBuilder().WithoutReference().BuildInput())
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})
}

func TestStatusChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		got, err := f.cmds.ApproveBooking(ctx, adminUser, seeded.ID(), "deposit received")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, got.Status())

		stored, _ := f.store.Booking(seeded.ID())
		assert.Equal(t, booking.StatusConfirmed, stored.Status())
		assert.Equal(t, "deposit received", ptr.Deref(stored.AdminNotes()))
		assert.Equal(t, []shared.EventKind{shared.EventBookingConfirmed}, f.kinds())
	})

	t.Run("approve needs a pending booking", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder().WithStatus(booking.StatusCancelled))

		_, err := f.cmds.ApproveBooking(ctx, adminUser, seeded.ID(), "")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, booking.ErrInvalidTransition))

		stored, _ := f.store.Booking(seeded.ID())
		assert.Equal(t, booking.StatusCancelled, stored.Status())
	})

	t.Run("reject pending", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		got, err := f.cmds.RejectBooking(ctx, adminUser, seeded.ID(), "no proof")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, got.Status())
		assert.Equal(t, []shared.EventKind{shared.EventBookingCancelled}, f.kinds())
	})

	t.Run("set status", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed))

		got, err := f.cmds.SetStatus(ctx, adminUser, seeded.ID(), "completed")
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, got.Status())

		_, err = f.cmds.SetStatus(ctx, adminUser, seeded.ID(), "bogus")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.ApproveBooking(ctx, adminUser, 99, "")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("requires an admin", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		_, err := f.cmds.ApproveBooking(ctx, staffUser, seeded.ID(), "")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		_, err = f.cmds.RejectBooking(ctx, shared.Anonymous(), seeded.ID(), "")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		_, err = f.cmds.SetStatus(ctx, staffUser, seeded.ID(), "CONFIRMED")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

func TestUpdateBookingTimeRange(t *testing.T) {
	ctx := context.Background()

	t.Run("a booking never conflicts with itself", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		got, err := f.cmds.UpdateBookingTimeRange(ctx, seeded.ID(), "11:00", "14:00")
		require.NoError(t, err)
		assert.Equal(t, "11:00-14:00", got.Slot().String())
		assert.Equal(t, 3, got.DurationHours())
		assert.Equal(t, []string{"2024-06-01"}, f.store.LockedDates())
		assert.Equal(t, []shared.EventKind{shared.EventBookingRescheduled}, f.kinds())
	})

	t.Run("moving onto another booking conflicts", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())
		f.seed(builder.NewBookingBuilder().WithID(2).WithPaymentID(2).WithReference("BK-OTHER001").
			WithSlot("14:00", "16:00").WithStatus(booking.StatusConfirmed))

		_, err := f.cmds.UpdateBookingTimeRange(ctx, seeded.ID(), "13:00", "15:00")
		assert.True(t, errs.Is(err, errs.ErrConflict))

		stored, _ := f.store.Booking(seeded.ID())
		assert.Equal(t, "10:00-12:00", stored.Slot().String())
	})

	t.Run("moving onto a blackout conflicts", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())
		f.store.SeedRange(builder.NewRangeBuilder().MustDomain())

		_, err := f.cmds.UpdateBookingTimeRange(ctx, seeded.ID(), "12:00", "13:30")
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("invalid range", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		_, err := f.cmds.UpdateBookingTimeRange(ctx, seeded.ID(), "22:00", "06:00")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Empty(t, f.store.Ops())
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.UpdateBookingTimeRange(ctx, 42, "10:00", "11:00")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestUpdateBookingDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("applies set fields only", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())
		price := payment.Money(450000)

		got, err := f.cmds.UpdateBookingDetails(ctx, adminUser, seeded.ID(), booking.DetailsPatch{
			PackageName:  ptr.Of("Premium"),
			PackagePrice: &price,
		})
		require.NoError(t, err)
		assert.Equal(t, "Premium", got.Details().PackageName())
		assert.Equal(t, price, got.Details().PackagePrice())
		assert.Equal(t, seeded.Guest(), got.Guest())
		assert.Equal(t, seeded.Slot(), got.Slot())

		p, ok := f.store.Payment(seeded.PaymentID())
		require.True(t, ok)
		assert.Equal(t, payment.Money(350000), p.RemainingBalance())
		assert.Contains(t, f.store.Ops(), memstore.OpPaymentLink)
	})

	t.Run("price below the downpayment is rejected", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())
		price := payment.Money(50000)

		_, err := f.cmds.UpdateBookingDetails(ctx, adminUser, seeded.ID(), booking.DetailsPatch{
			PackagePrice: &price,
		})
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.True(t, errs.Is(err, payment.ErrAmountExceedsDue))

		b, ok := f.store.Booking(seeded.ID())
		require.True(t, ok)
		assert.Equal(t, payment.Money(300000), b.Details().PackagePrice())
		p, ok := f.store.Payment(seeded.PaymentID())
		require.True(t, ok)
		assert.Equal(t, payment.Money(200000), p.RemainingBalance())
	})

	t.Run("full payment stays settled after a price change", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.PaymentType = "FULL"
			b.PaymentAmount = b.PackagePrice
		}))
		price := payment.Money(450000)

		_, err := f.cmds.UpdateBookingDetails(ctx, adminUser, seeded.ID(), booking.DetailsPatch{
			PackagePrice: &price,
		})
		require.NoError(t, err)
		p, ok := f.store.Payment(seeded.PaymentID())
		require.True(t, ok)
		assert.Equal(t, payment.Money(0), p.RemainingBalance())
	})

	t.Run("non-price edit leaves the payment alone", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		_, err := f.cmds.UpdateBookingDetails(ctx, adminUser, seeded.ID(), booking.DetailsPatch{
			Location: ptr.Of("Studio B"),
		})
		require.NoError(t, err)
		assert.NotContains(t, f.store.Ops(), memstore.OpPaymentLink)
	})

	t.Run("unchanged patch skips the write", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		_, err := f.cmds.UpdateBookingDetails(ctx, adminUser, seeded.ID(), booking.DetailsPatch{
			Location: ptr.Of(seeded.Details().Location()),
		})
		require.NoError(t, err)
		assert.NotContains(t, f.store.Ops(), memstore.OpBookingDetails)
	})

	t.Run("requires an admin", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		_, err := f.cmds.UpdateBookingDetails(ctx, staffUser, seeded.ID(), booking.DetailsPatch{})
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}

func TestAttachPaymentProof(t *testing.T) {
	ctx := context.Background()

	t.Run("proof lands on booking and payment", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())
		f.proofs.EXPECT().Exists(gomock.Any(), "late.pdf").Return(true, nil)

		got, err := f.cmds.AttachPaymentProof(ctx, seeded.ID(), "late.pdf")
		require.NoError(t, err)
		assert.Equal(t, "late.pdf", ptr.Deref(got.ProofRef()))
		assert.Equal(t, booking.StatusPending, got.Status())

		p, _ := f.store.Payment(seeded.PaymentID())
		assert.Equal(t, payment.StatusCompleted, p.Status())
		assert.Equal(t, "late.pdf", ptr.Deref(p.ProofRef()))
		assert.NotContains(t, f.store.Ops(), memstore.OpBookingOverlaps)
		assert.Equal(t, []shared.EventKind{shared.EventProofAttached}, f.kinds())
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)
		f.proofs.EXPECT().Exists(gomock.Any(), "late.pdf").Return(true, nil)

		_, err := f.cmds.AttachPaymentProof(ctx, 7, "late.pdf")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the link before deleting both rows", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		require.NoError(t, f.cmds.DeleteBooking(ctx, adminUser, seeded.ID()))

		assert.Equal(t, []string{
			memstore.OpPaymentUnlink,
			memstore.OpBookingDelete,
			memstore.OpPaymentDelete,
		}, f.store.Ops())
		assert.Empty(t, f.store.Bookings())
		assert.Empty(t, f.store.Payments())
		assert.Equal(t, []shared.EventKind{shared.EventBookingDeleted}, f.kinds())
	})

	t.Run("failed payment delete restores both rows", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())
		f.store.FailOn(memstore.OpPaymentDelete, errBoom)

		err := f.cmds.DeleteBooking(ctx, adminUser, seeded.ID())
		assert.True(t, errs.Is(err, errs.ErrStorage))

		_, ok := f.store.Booking(seeded.ID())
		assert.True(t, ok)
		p, ok := f.store.Payment(seeded.PaymentID())
		require.True(t, ok)
		assert.False(t, p.IsOrphan(), "link must be restored on rollback")
	})

	t.Run("deleted slot can be booked again", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder().WithReference("BK-GONE0001").WithStatus(booking.StatusConfirmed))

		require.NoError(t, f.cmds.DeleteBooking(ctx, adminUser, seeded.ID()))
		_, err := f.cmds.CreateBooking(ctx, builder.NewBookingBuilder().BuildInput())
		assert.NoError(t, err)
	})

	t.Run("requires an admin", func(t *testing.T) {
		f := newFixture(t)
		seeded := f.seed(builder.NewBookingBuilder())

		err := f.cmds.DeleteBooking(ctx, staffUser, seeded.ID())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		err := f.cmds.DeleteBooking(ctx, adminUser, 5)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
