package server

import (
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidateStruct validates a struct and returns formatted errors
func ValidateStruct(s interface{}) []ValidationError {
	validate := validator.New()
	var errs []ValidationError

	err := validate.Struct(s)
	if err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs = append(errs, ValidationError{
				Field:   fieldErr.Field(),
				Tag:     fieldErr.Tag(),
				Message: getErrorMessage(fieldErr),
			})
		}
	}

	return errs
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " es obligatorio"
	case "email":
		return err.Field() + " debe ser un correo válido"
	case "datetime":
		return err.Field() + " debe tener formato " + err.Param()
	case "gte":
		return err.Field() + " debe ser mayor o igual a " + err.Param()
	case "lte":
		return err.Field() + " debe ser menor o igual a " + err.Param()
	default:
		return err.Field() + " es inválido"
	}
}
