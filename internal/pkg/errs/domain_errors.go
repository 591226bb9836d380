package errs

import "errors"

// Error categories shared by the usecase layer. Concrete errors are Marked
// with one of these so handlers can map them without knowing the origin.
var (
	// caller's fault, never retried
	ErrValidation = errors.New("validation failed")

	// time slot or reference already taken
	ErrConflict = errors.New("conflict")

	ErrNotFound = errors.New("not found")

	// admin-gated operation called without an admin principal
	ErrForbidden = errors.New("forbidden")

	// missing or bad credentials
	ErrUnauthorized = errors.New("unauthorized")

	// transaction or infrastructure failure, safe to retry
	ErrStorage = errors.New("storage failure")
)
