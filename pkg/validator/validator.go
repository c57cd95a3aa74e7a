package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// Guatemalan DPI: exactly 13 decimal digits.
	dpiPattern = regexp.MustCompile(`^[0-9]{13}$`)
	// Local phone number: exactly 8 decimal digits.
	telefonoPattern = regexp.MustCompile(`^[0-9]{8}$`)
	// House number: one or more decimal digits.
	numeroCasaPattern = regexp.MustCompile(`^[0-9]+$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("dpi", func(fl validator.FieldLevel) bool {
		return dpiPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("telefono_gt", func(fl validator.FieldLevel) bool {
		return telefonoPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("numero_casa", func(fl validator.FieldLevel) bool {
		return numeroCasaPattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "dpi":
				errors[field] = field + " must be exactly 13 digits"
			case "telefono_gt":
				errors[field] = field + " must be exactly 8 digits"
			case "numero_casa":
				errors[field] = field + " must contain only digits"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
