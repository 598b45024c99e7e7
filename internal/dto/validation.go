package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse carries field-level messages for 400 responses.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// NewValidationErrorResponse turns a binding error into per-field
// messages. Non-validator errors (malformed JSON and the like) collapse
// into a single "detail" entry.
func NewValidationErrorResponse(err error) ValidationErrorResponse {
	out := ValidationErrorResponse{Errors: map[string]string{}}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Errors["detail"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		out.Errors[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if fe.Kind().String() == "string" {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind().String() == "string" {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return "is invalid"
	}
}
