package service

import "strings"

// FieldError describes a single invalid field in an edit payload.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field failure found before any mutation is
// attempted. The store is untouched when one is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
