package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidBody is returned when the request body is not valid JSON
var ErrInvalidBody = errors.New("invalid request body")

// DecodeAndValidate decodes the JSON request body into dst and validates it
// against its `validate` struct tags.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return ErrInvalidBody
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// Validate validates an already-populated struct against its tags.
// Used by multipart handlers that fill the struct from form values.
func Validate(dst interface{}) error {
	return validate.Struct(dst)
}

// ValidationMessage renders a validation error as a human-readable message,
// one clause per violated field.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", field))
		case "url":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid URL", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of: %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", field))
		}
	}
	return strings.Join(msgs, ", ")
}
