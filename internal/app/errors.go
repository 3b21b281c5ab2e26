package app

import (
	"errors"
	"strings"

	"nutrilog/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidCredentials indicates that the provided email or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken indicates a missing, malformed, expired or orphaned bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrEmailTaken indicates that an account with the email already exists.
	ErrEmailTaken = errors.New("user already exists")
	// ErrDuplicateFood indicates that the user already has a food with that name.
	ErrDuplicateFood = errors.New("food already exists")
	// ErrUnknownFood indicates that a meal log names a food the user never defined.
	ErrUnknownFood = errors.New("unknown food")
	// ErrNotFound indicates that the record does not exist or belongs to another user.
	ErrNotFound = domain.ErrNotFound
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError is returned when an input struct fails validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" failed "+f.Rule)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func newValidationError(errs validator.ValidationErrors) *ValidationError {
	ve := &ValidationError{Fields: make([]FieldError, 0, len(errs))}
	for _, fe := range errs {
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return ve
}

func invalid(field, rule string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Rule: rule}}}
}
