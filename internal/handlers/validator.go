package handlers

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts validator/v10 to echo's Validator interface so
// handlers can Bind-then-Validate request payloads.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
