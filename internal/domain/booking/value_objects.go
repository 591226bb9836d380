package booking

import (
	"crypto/rand"
	"errors"
	"strings"

	"studio-booking/internal/domain/payment"
	"studio-booking/internal/pkg/mailaddr"
	"studio-booking/internal/pkg/patch"
)

var (
	ErrInvalidReference  = errors.New("invalid booking reference")
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrGuestPhoneMissing = errors.New("guest phone is required")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
)

const (
	ReferencePrefix    = "BK-"
	referenceBodyLen   = 8
	referenceAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxReferenceLength = 50
	maxTextLength      = 255
	maxRequestsLength  = 2000
)

type Reference struct {
	value string
}

func NewReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxReferenceLength {
		return Reference{}, ErrInvalidReference
	}
	return Reference{value: s}, nil
}

// GenerateReference returns "BK-" followed by 8 uppercase alphanumerics.
func GenerateReference() Reference {
	buf := make([]byte, referenceBodyLen)
	if _, err := rand.Read(buf); err != nil {
		panic("booking: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return Reference{value: ReferencePrefix + string(buf)}
}

// ReconstructReference trusts a value already persisted.
func ReconstructReference(s string) Reference {
	return Reference{value: s}
}

func (r Reference) String() string { return r.value }
func (r Reference) IsZero() bool   { return r.value == "" }

type Guest struct {
	name  string
	email string
	phone string
}

func NewGuest(name, email, phone string) (Guest, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Guest{}, ErrGuestNameRequired
	}
	email, ok := mailaddr.Normalize(email)
	if !ok {
		return Guest{}, ErrInvalidEmail
	}
	if phone == "" {
		return Guest{}, ErrGuestPhoneMissing
	}
	if len(name) > maxTextLength || len(email) > maxTextLength || len(phone) > maxTextLength {
		return Guest{}, ErrFieldTooLong
	}
	return Guest{name: name, email: email, phone: phone}, nil
}

func ReconstructGuest(name, email, phone string) Guest {
	return Guest{name: name, email: email, phone: phone}
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }
func (g Guest) Phone() string { return g.phone }

// Details describes what is booked. None of it affects scheduling.
type Details struct {
	location        string
	category        string
	packageName     string
	packagePrice    payment.Money
	specialRequests string
}

func NewDetails(location, category, packageName string, price payment.Money, specialRequests string) (Details, error) {
	d := Details{
		location:        strings.TrimSpace(location),
		category:        strings.TrimSpace(category),
		packageName:     strings.TrimSpace(packageName),
		packagePrice:    price,
		specialRequests: strings.TrimSpace(specialRequests),
	}
	if price < 0 {
		return Details{}, payment.ErrNegativeMoney
	}
	if len(d.location) > maxTextLength || len(d.category) > maxTextLength ||
		len(d.packageName) > maxTextLength || len(d.specialRequests) > maxRequestsLength {
		return Details{}, ErrFieldTooLong
	}
	return d, nil
}

func ReconstructDetails(location, category, packageName string, price payment.Money, specialRequests string) Details {
	return Details{
		location:        location,
		category:        category,
		packageName:     packageName,
		packagePrice:    price,
		specialRequests: specialRequests,
	}
}

func (d Details) Location() string            { return d.location }
func (d Details) Category() string            { return d.category }
func (d Details) PackageName() string         { return d.packageName }
func (d Details) PackagePrice() payment.Money { return d.packagePrice }
func (d Details) SpecialRequests() string     { return d.specialRequests }

// DetailsPatch carries optional replacements; nil fields keep their value.
type DetailsPatch struct {
	GuestName       *string
	GuestPhone      *string
	Location        *string
	Category        *string
	PackageName     *string
	PackagePrice    *payment.Money
	SpecialRequests *string
}

// ChangesFrom reports whether applying the patch to b would change anything.
func (p DetailsPatch) ChangesFrom(b *Booking) bool {
	return patch.Changed(p.GuestName, b.guest.name) ||
		patch.Changed(p.GuestPhone, b.guest.phone) ||
		patch.Changed(p.Location, b.details.location) ||
		patch.Changed(p.Category, b.details.category) ||
		patch.Changed(p.PackageName, b.details.packageName) ||
		patch.Changed(p.PackagePrice, b.details.packagePrice) ||
		patch.Changed(p.SpecialRequests, b.details.specialRequests)
}
