package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator is the service-level validation layer. The HTTP boundary is
// already guarded by Gin's binding tags; services validate again so that
// direct internal callers get the same guarantees.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()
	// The DTOs carry their rules in binding tags; reuse them here so both
	// layers enforce exactly the same constraints.
	validate.SetTagName("binding")
	return &Validator{validate: validate}
}

// FieldError is one failed constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Struct validates s against its binding tags and returns one FieldError
// per violation, nil when valid.
func (v *Validator) Struct(s any) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return fieldErrs
}

// ScoreInRange checks a rating sub-score against the allowed [1,5] range.
func ScoreInRange(score int) bool {
	return score >= 1 && score <= 5
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid":
		return "must be a valid uuid"
	case "url":
		return "must be a valid url"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
