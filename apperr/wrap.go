package apperr

import (
	stderrors "errors"

	"github.com/kbukum/faultkit/code"
)

// Do runs op and classifies its failure under c. On success the computed
// value is returned unchanged. A failure that is already an *Error passes
// through as-is so boundaries never double-wrap.
//
// Place Do where a subsystem's public contract meets the subsystems it
// depends on, not inside unrelated business logic.
func Do[T any](c code.Code, op func() (T, error)) (T, error) {
	v, err := op()
	if err == nil {
		return v, nil
	}
	return v, From(err, c)
}

// Run is Do for operations with no result value.
func Run(c code.Code, op func() error) error {
	if err := op(); err != nil {
		return From(err, c)
	}
	return nil
}

// From converts err into an *Error. An err that already is (or wraps) an
// *Error is returned unchanged; anything else is wrapped under c with err
// as the cause.
func From(err error, c code.Code) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := As(err); ok {
		return appErr
	}
	return Wrap(err, c)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, c code.Code) bool {
	if appErr, ok := As(err); ok {
		return appErr.code == c
	}
	return false
}

// CodeOf returns the classification of err, or code.General when err is
// unclassified.
func CodeOf(err error) code.Code {
	if appErr, ok := As(err); ok {
		return appErr.code
	}
	return code.General
}
