package client

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when the API answers 404.
var ErrNotFound = errors.New("not found")

// ErrSaveInProgress is returned by SaveGuard while a save is running.
var ErrSaveInProgress = errors.New("save already in progress")

// ValidationError carries the field errors of a 422 response.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// Field returns the first message for field, if any.
func (e *ValidationError) Field(field string) string {
	if msgs := e.Errors[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// APIError is any other non-2xx response.
type APIError struct {
	StatusCode int
	Method     string
	Route      string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Route, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Route, e.StatusCode, e.Message)
}
