package web

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GetErrorMsg returns a human readable message for the failed validation field.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return fmt.Sprintf(" field must be greater or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf(" field must be less or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf(" field must be greater than %s", fe.Param())
	case "alphanum":
		return " field must contain only alphanumeric characters"
	case "frequency":
		return " field must be one of daily, weekly or monthly"
	case "instrument":
		return " field must be a tracked instrument symbol"
	}

	return " field is invalid"
}
