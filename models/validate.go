package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator used for entity constraints.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// validateEntity runs the struct constraints before a row is written. The
// returned error is a validator.ValidationErrors, translated to a 400 upstream.
func validateEntity(v any) error {
	return Validator().Struct(v)
}
