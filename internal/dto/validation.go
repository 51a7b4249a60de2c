package dto

import (
	"github.com/fxdeck/currency_converter_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the validators used by the binding tags
// in this package onto Gin's validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currency", validateCurrencyCode)
}

// validateCurrencyCode backs the `currency` binding tag: exactly three ASCII
// letters, any case.
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.IsValidCurrencyCode(fl.Field().String())
}
