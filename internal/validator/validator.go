package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with field-level error reporting.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and returns ValidationErrors, or nil when the
// value passes.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidationError describes a single failed field rule.
type ValidationError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	parts := make([]string, len(e))
	for i, ve := range e {
		parts[i] = ve.Message
	}
	return strings.Join(parts, "; ")
}

// ToValidationErrors converts a validator.ValidationErrors into our
// serializable form.
func ToValidationErrors(err error) ValidationErrors {
	var result ValidationErrors

	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrors {
			result = append(result, ValidationError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fmt.Sprintf("field %s failed validation rule %q", fe.Field(), fe.Tag()),
			})
		}
		return result
	}

	return ValidationErrors{{Message: err.Error()}}
}
