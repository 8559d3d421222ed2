package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// IsStringList reports whether a decoded JSON value is a list of strings.
// A bare string is not a list even though it ranges like one; an empty
// array counts; anything non-iterable (number, null, object) does not.
func IsStringList(v interface{}) bool {
	switch items := v.(type) {
	case []string:
		return true
	case []interface{}:
		for _, item := range items {
			if _, ok := item.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}
