package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"notblank":  "{field} must not be blank",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"gt":        "{field} must be greater than {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be at most {param} characters",
		"min":       "{field} must be greater than or equal to {param}",
		"datetime":  "{field} must match the format {param}",
		"timeofday": "{field} must be a time of day formatted as HH:MM or HH:MM:SS",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
