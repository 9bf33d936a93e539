// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the Echo validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(),
	}
}

// Validate runs struct-tag validation on the bound request.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
