package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can rely on c.Validate(req).
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for all request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct validation and converts failures into a 400 echo
// error carrying the per-field messages.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		fields := map[string]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				fields[fe.StructNamespace()] = fe.Error()
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, fields)
	}
	return nil
}
