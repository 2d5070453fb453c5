// Package apperr provides the classified application error value and the
// wrapping adapter that converts arbitrary failures into one at an
// abstraction boundary.
//
// An *Error carries a code from the code package, ordered interpolation
// params for the localized user message, an optional developer message for
// logs, and the original cause. Errors are immutable after construction and
// interoperate with errors.Is/As/Unwrap.
//
// # Wrapping at boundaries
//
//	cfg, err := apperr.Do(code.BadConfig, func() (Config, error) {
//	    return readConfig(path)
//	})
//
// Do is the single point where unclassified failures (I/O, parsing, external
// libraries) are translated; code above it only ever sees *Error values.
package apperr
