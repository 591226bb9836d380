// Package mailaddr normalizes addresses shared by admin accounts and guests.
package mailaddr

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const MaxLength = 255

var validate = validator.New()

// Normalize trims and lowercases s and reports whether the result is a
// deliverable-looking address no longer than MaxLength.
func Normalize(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > MaxLength {
		return "", false
	}
	if err := validate.Var(s, "required,email"); err != nil {
		return "", false
	}
	return s, true
}
