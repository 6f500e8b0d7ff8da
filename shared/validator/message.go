package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} must not be blank",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			if _, ok := messages[valErr.Tag()]; ok {
				return render(valErr)
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

// fields groups every violation under the JSON name of the offending field.
func fields(err error) map[string][]string {
	out := map[string][]string{}

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		out[bodyField] = []string{err.Error()}

		return out
	}

	for _, valErr := range valErrors {
		out[valErr.Field()] = append(out[valErr.Field()], render(valErr))
	}

	return out
}
