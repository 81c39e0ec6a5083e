// Package form carries the field-level validation result shared by the
// three submission forms. It mirrors the browser's required-field checks:
// validation failures block a submission before any notification attempt.
package form

import (
	"fmt"
	"strings"
)

// FieldError names one field that failed validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError aggregates every failing field of one submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Validator collects field errors during a Validate pass.
type Validator struct {
	fields []FieldError
}

// Require records an error when a required string value is empty.
func (v *Validator) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.fields = append(v.fields, FieldError{Field: field, Reason: "is required"})
	}
}

// Add records an arbitrary field error.
func (v *Validator) Add(field, reason string) {
	v.fields = append(v.fields, FieldError{Field: field, Reason: reason})
}

// OneOf records an error when value is not one of the allowed labels.
// An empty value is left to Require.
func (v *Validator) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.fields = append(v.fields, FieldError{Field: field, Reason: "is not a known option"})
}

// Err returns the collected ValidationError, or nil if every check passed.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
