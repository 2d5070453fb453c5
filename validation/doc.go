// Package validation validates structs using go-playground/validator and
// reports failures as classified application errors under
// code.InvalidInput.
//
//	type Settings struct {
//	    Name string `json:"name" validate:"required"`
//	}
//
//	if err := validation.Struct(&s); err != nil { ... }
package validation
