package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkInput runs struct validation and converts failures into the same
// field -> message shape the server uses for 400 responses, so callers handle
// local and remote validation identically.
func checkInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[snakeCase(fe.Field())] = validationMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "eqfield":
		return "Passwords do not match."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}

// snakeCase converts an exported Go field name to the wire field name.
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
