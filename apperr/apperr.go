package apperr

import (
	"fmt"
	"strings"

	"github.com/kbukum/faultkit/code"
)

// Error is the classified application error. It is immutable after
// construction: all fields are set by the constructors and only exposed
// through accessors.
type Error struct {
	code       code.Code
	devMessage string
	params     []any
	cause      error
}

// New creates an Error with the given code and message params.
// Params are interpolated positionally into the code's message template
// by the catalog package; their order must match the template placeholders.
func New(c code.Code, params ...any) *Error {
	return &Error{code: c, params: cloneParams(params)}
}

// NewDev creates an Error with a developer message. The developer message
// is for logs and debugging only and is never shown to end users.
func NewDev(c code.Code, devMessage string, params ...any) *Error {
	return &Error{code: c, devMessage: devMessage, params: cloneParams(params)}
}

// Wrap classifies an existing failure under c, keeping it as the cause.
// Dropping an available cause when re-classifying is a defect; always build
// the new error through Wrap (or WrapDev) so the chain stays intact.
func Wrap(err error, c code.Code, params ...any) *Error {
	return &Error{code: c, params: cloneParams(params), cause: err}
}

// WrapDev is Wrap with a developer message attached.
func WrapDev(err error, c code.Code, devMessage string, params ...any) *Error {
	return &Error{code: c, devMessage: devMessage, params: cloneParams(params), cause: err}
}

// Code returns the classification code.
func (e *Error) Code() code.Code { return e.code }

// DevMessage returns the developer message, if any.
func (e *Error) DevMessage() string { return e.devMessage }

// Params returns a copy of the ordered interpolation params.
func (e *Error) Params() []any { return cloneParams(e.params) }

// Cause returns the wrapped failure, if any.
func (e *Error) Cause() error { return e.cause }

// Unwrap returns the cause for errors.Is/As traversal.
func (e *Error) Unwrap() error { return e.cause }

// Error renders the code, developer message, params and cause for logs.
// User-facing text comes from the catalog, never from here.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.code))
	if e.devMessage != "" {
		b.WriteString(": ")
		b.WriteString(e.devMessage)
	}
	if len(e.params) > 0 {
		b.WriteString(fmt.Sprintf(" %v", e.params))
	}
	if e.cause != nil {
		b.WriteString(fmt.Sprintf(" (cause: %v)", e.cause))
	}
	return b.String()
}

func cloneParams(params []any) []any {
	if len(params) == 0 {
		return nil
	}
	out := make([]any, len(params))
	copy(out, params)
	return out
}
