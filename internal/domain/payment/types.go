package payment

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidType   = errors.New("invalid payment type")
	ErrInvalidStatus = errors.New("invalid payment status")
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrNegativeMoney = errors.New("money cannot be negative")
	ErrMoneyRange    = errors.New("money amount out of range")
)

type Type string

const (
	TypeFull        Type = "FULL"
	TypeDownpayment Type = "DOWNPAYMENT"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case TypeFull, TypeDownpayment:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Money is an amount in minor units (cents).
type Money int64

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return 0, ErrNegativeMoney
	}
	return Money(cents), nil
}

// MoneyFromFloat rounds a major-unit amount such as 1500.5 to cents.
func MoneyFromFloat(v float64) (Money, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMoneyRange
	}
	if v < 0 {
		return 0, ErrNegativeMoney
	}
	cents := math.Round(v * 100)
	// float64(math.MaxInt64) is 2^63, one past the largest int64
	if cents >= float64(math.MaxInt64) {
		return 0, ErrMoneyRange
	}
	return Money(cents), nil
}

func (m Money) Cents() int64     { return int64(m) }
func (m Money) Float64() float64 { return float64(m) / 100 }
func (m Money) String() string   { return fmt.Sprintf("%d.%02d", int64(m)/100, int64(m)%100) }
