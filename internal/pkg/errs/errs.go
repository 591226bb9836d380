package errs

import cr "github.com/cockroachdb/errors"

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// Sentinel creates an error classified under one of the shared categories.
// Two sentinels with different messages never match each other, even when
// they share a category.
func Sentinel(msg string, category error) error {
	return &sentinel{msg: msg, category: category}
}

type sentinel struct {
	msg      string
	category error
}

func (s *sentinel) Error() string { return s.msg }
func (s *sentinel) Unwrap() error { return s.category }

// Category reports which shared category err was marked with, or nil.
func Category(err error) error {
	for _, c := range []error{ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict, ErrStorage} {
		if cr.Is(err, c) {
			return c
		}
	}
	return nil
}
