package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MetaValidationErrors is the metadata key holding per-field messages
const MetaValidationErrors = "validation_errors"

// ValidationError collects messages per field and becomes a single
// InvalidArgument Error.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// NewValidationError returns an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Error lists fields in name order, e.g.
// "validation failed: log.level: is invalid; server.port: is required"
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range slices.Sorted(maps.Keys(v.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return b.String()
}

// AddFieldError records one message against field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors reports whether any field failed
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError returns nil when nothing failed. The field messages are attached
// as MetaValidationErrors in a shape that survives gRPC status details.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	fields := make(map[string]any, len(v.Fields))
	for field, msgs := range v.Fields {
		list := make([]any, len(msgs))
		for i, m := range msgs {
			list[i] = m
		}
		fields[field] = list
	}
	return InvalidArgument(v.Error()).WithMeta(MetaValidationErrors, fields)
}

// ValidationBuilder is a chainable front for ValidationError, used by the
// Config.Validate methods.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder returns an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{err: NewValidationError()}
}

// Field records message against field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf is Field with a format string
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records "is required" against field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns an InvalidArgument error, or nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if err := vb.err.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired fails a blank or whitespace-only value
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange fails a value outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum fails a value not in allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}
