// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps go-playground/validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a CustomValidator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate validates the given struct against its `validate` tags.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
