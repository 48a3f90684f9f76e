package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/compozy/cfgmigrate/pkg/document"
)

// RegisterCustomValidators registers custom validation functions
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("document_format", validateDocumentFormat)
}

func validateDocumentFormat(fl validator.FieldLevel) bool {
	_, err := document.ParseFormat(fl.Field().String())
	return err == nil
}
