package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used for model schema checks.
var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
}
