package payment

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMethodRequired   = errors.New("payment method is required")
	ErrAmountExceedsDue = errors.New("downpayment exceeds package price")
	ErrAlreadyLinked    = errors.New("payment is already linked to a booking")
	ErrInvalidBookingID = errors.New("invalid booking id")
)

type ID int64

// Payment is owned by exactly one booking. bookingID is nil only between
// the payment's insert and the owning booking's insert.
type Payment struct {
	id               ID
	bookingID        *int64
	amount           Money
	remainingBalance Money
	paymentType      Type
	method           string
	status           Status
	gcashNumber      *string
	proofRef         *string
	paidAt           time.Time
}

type NewParams struct {
	Amount      Money
	Type        Type
	Method      string
	GCashNumber *string
	ProofRef    *string
}

// NewOrphan builds the payment written before its booking exists. A supplied
// proof marks the payment completed.
func NewOrphan(p NewParams, packagePrice Money, now time.Time) (*Payment, error) {
	if p.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	method := strings.TrimSpace(p.Method)
	if method == "" {
		return nil, ErrMethodRequired
	}
	remaining, err := RemainingBalance(p.Type, packagePrice, p.Amount)
	if err != nil {
		return nil, err
	}

	status := StatusPending
	if p.ProofRef != nil {
		status = StatusCompleted
	}

	return &Payment{
		amount:           p.Amount,
		remainingBalance: remaining,
		paymentType:      p.Type,
		method:           strings.ToUpper(method),
		status:           status,
		gcashNumber:      p.GCashNumber,
		proofRef:         p.ProofRef,
		paidAt:           now,
	}, nil
}

func Reconstruct(
	id ID,
	bookingID *int64,
	amount, remainingBalance Money,
	paymentType Type,
	method string,
	status Status,
	gcashNumber, proofRef *string,
	paidAt time.Time,
) *Payment {
	return &Payment{
		id:               id,
		bookingID:        bookingID,
		amount:           amount,
		remainingBalance: remainingBalance,
		paymentType:      paymentType,
		method:           method,
		status:           status,
		gcashNumber:      gcashNumber,
		proofRef:         proofRef,
		paidAt:           paidAt,
	}
}

// RemainingBalance is price minus amount for a downpayment and zero for a
// full payment.
func RemainingBalance(t Type, packagePrice, amount Money) (Money, error) {
	if t != TypeDownpayment {
		return 0, nil
	}
	if amount > packagePrice {
		return 0, ErrAmountExceedsDue
	}
	return packagePrice - amount, nil
}

func (p *Payment) clone() *Payment {
	c := *p
	return &c
}

func (p *Payment) WithID(id ID) *Payment {
	c := p.clone()
	c.id = id
	return c
}

// LinkTo sets the owning booking and recomputes the balance against the
// booking's final package price.
func (p *Payment) LinkTo(bookingID int64, packagePrice Money) (*Payment, error) {
	if bookingID <= 0 {
		return nil, ErrInvalidBookingID
	}
	if p.bookingID != nil && *p.bookingID != bookingID {
		return nil, ErrAlreadyLinked
	}
	remaining, err := RemainingBalance(p.paymentType, packagePrice, p.amount)
	if err != nil {
		return nil, err
	}
	c := p.clone()
	c.bookingID = &bookingID
	c.remainingBalance = remaining
	return c, nil
}

func (p *Payment) Unlinked() *Payment {
	c := p.clone()
	c.bookingID = nil
	return c
}

func (p *Payment) WithProof(ref string) *Payment {
	c := p.clone()
	c.proofRef = &ref
	c.status = StatusCompleted
	return c
}

func (p *Payment) WithStatus(s Status) *Payment {
	c := p.clone()
	c.status = s
	return c
}

func (p *Payment) IsOrphan() bool { return p.bookingID == nil }

func (p *Payment) ID() ID                  { return p.id }
func (p *Payment) BookingID() *int64       { return p.bookingID }
func (p *Payment) Amount() Money           { return p.amount }
func (p *Payment) RemainingBalance() Money { return p.remainingBalance }
func (p *Payment) Type() Type              { return p.paymentType }
func (p *Payment) Method() string          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) GCashNumber() *string    { return p.gcashNumber }
func (p *Payment) ProofRef() *string       { return p.proofRef }
func (p *Payment) PaidAt() time.Time       { return p.paidAt }
