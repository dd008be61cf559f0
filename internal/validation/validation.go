// Package validation binds and validates request input.
//
// It uses the `validator` library to enforce struct tag rules (such as
// positive ids or four digit years) and converts failures into field
// errors the client can act on.
package validation

import "github.com/go-playground/validator/v10"

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New()

// Struct validates v's `validate` tags.
func Struct(v any) error {
	return validate.Struct(v)
}
