package types

import "fmt"

// ValidationError represents a single validation error with structured information
type ValidationError struct {
	Field   string // Input field like "feature" or "events"
	Actual  string // What was entered
	Message string // Human-readable description
}

// ValidationErrors is a collection of validation errors
type ValidationErrors struct {
	Errors []ValidationError
}

// Add appends a new validation error to the collection
func (v *ValidationErrors) Add(field, actual, msg string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Actual:  actual,
		Message: msg,
	})
}

// HasErrors returns true if there are any validation errors
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface
func (v *ValidationErrors) Error() string {
	if !v.HasErrors() {
		return "no validation errors"
	}

	if len(v.Errors) == 1 {
		return v.Errors[0].Message
	}

	return fmt.Sprintf("validation failed with %d errors: %s", len(v.Errors), v.Errors[0].Message)
}
