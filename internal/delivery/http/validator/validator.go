// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "tienda/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the request validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request payload against its struct tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
