package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DefaultMessage renders a single binding failure as a client-facing message
func DefaultMessage(field, tag, param string) string {
	field = toSnakeCase(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date/time", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ItemizeBindingError turns a gin binding error into a field -> message map
// for the 400 response body. Non-validator errors (malformed JSON, bad types)
// collapse to a single "body" entry.
func ItemizeBindingError(err error) map[string]string {
	details := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details[toSnakeCase(e.Field())] = DefaultMessage(e.Field(), e.Tag(), e.Param())
		}
		return details
	}

	details["body"] = "invalid request body: " + err.Error()
	return details
}

func toSnakeCase(s string) string {
	runes := []rune(s)
	var result []rune
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// acronym runs like URL stay together
			if prevLower || nextLower {
				result = append(result, '_')
			}
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
