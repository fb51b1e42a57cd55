package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMessage is the top level message of a 422 response.
const ValidationMessage = "The given data was invalid."

// ValidationErrors is a field keyed bag of validation messages.
// It matches ErrValidation with errors.Is.
type ValidationErrors map[string][]string

// NewValidationErrors returns an empty bag.
func NewValidationErrors() ValidationErrors {
	return ValidationErrors{}
}

// Add appends a message for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// HasErrors reports whether any field has a message.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// OrNil returns nil for an empty bag so callers can `return bag.OrNil()`.
func (v ValidationErrors) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(v[f], ", ")))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// AsValidationErrors extracts a field bag from err. Binding errors produced by
// go-playground/validator are translated; anything else yields false.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var bag ValidationErrors
	if errors.As(err, &bag) {
		return bag, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return FromValidator(verrs), true
	}
	return nil, false
}

// FromValidator converts validator field errors into the bag. Field names are
// whatever the validator reports, so register a json tag name func to get
// snake_case keys.
func FromValidator(verrs validator.ValidationErrors) ValidationErrors {
	bag := NewValidationErrors()
	for _, fe := range verrs {
		field := fieldKey(fe)
		bag.Add(field, validatorMessage(fe, humanize(fe.Field())))
	}
	return bag
}

func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	// Drop the struct name prefix: "createResourceRequest.name" -> "name".
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		return fe.Field()
	}
	return ns
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func validatorMessage(fe validator.FieldError, name string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", name, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s.", name, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	default:
		return fmt.Sprintf("The %s is invalid.", name)
	}
}
