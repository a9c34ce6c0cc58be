package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Validation rule identifiers reported on FieldError.Rule.
const (
	RuleRequired = "required"
	RuleType     = "type"
	RuleFormat   = "format"
	RuleEnum     = "enum"
	RuleNull     = "null"
	RuleLength   = "length"
	RuleUnknown  = "unknown"
)

var (
	ErrRequired     = errors.New("required field is missing")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrFormat       = errors.New("invalid format")
	ErrEnum         = errors.New("value not allowed")
	ErrNull         = errors.New("null is not allowed")
	ErrLength       = errors.New("length out of range")
	ErrUnknownField = errors.New("unknown field")
)

// FieldError describes one failed check. Path is the dotted wire path of the
// field (for example "principal.name" or "allowedLocations[2]"); Field is the
// internal name of the top-most schema field involved.
type FieldError struct {
	Path  string
	Field string
	Rule  string
	Err   error
}

func (e FieldError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	if e.Rule != "" {
		return fmt.Sprintf("%s: %v (rule %s)", path, e.Err, e.Rule)
	}
	return fmt.Sprintf("%s: %v", path, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// MarshalJSON exports the error as {path, field, rule, message}.
func (e FieldError) MarshalJSON() ([]byte, error) {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Path    string `json:"path"`
		Field   string `json:"field,omitempty"`
		Rule    string `json:"rule,omitempty"`
		Message string `json:"message"`
	}{
		Path:    e.Path,
		Field:   e.Field,
		Rule:    e.Rule,
		Message: msg,
	})
}

// ValidationError collects every FieldError produced while constructing or
// decoding a model. It unwraps to the individual issues so errors.Is and
// errors.As reach the sentinels and UnknownFieldError.
type ValidationError struct {
	Schema string
	issues []FieldError
}

// Add appends an issue.
func (ve *ValidationError) Add(fe FieldError) {
	ve.issues = append(ve.issues, fe)
}

// Issues returns a copy of the collected issues.
func (ve *ValidationError) Issues() []FieldError {
	if ve == nil {
		return nil
	}
	return append([]FieldError(nil), ve.issues...)
}

// Len returns the number of issues.
func (ve *ValidationError) Len() int {
	if ve == nil {
		return 0
	}
	return len(ve.issues)
}

// Empty reports whether no issue was recorded.
func (ve *ValidationError) Empty() bool { return ve.Len() == 0 }

// ErrOrNil returns ve when it holds issues and a nil error otherwise.
func (ve *ValidationError) ErrOrNil() error {
	if ve.Empty() {
		return nil
	}
	return ve
}

func (ve *ValidationError) Error() string {
	if ve == nil || len(ve.issues) == 0 {
		return ""
	}
	prefix := "model: validation failed"
	if ve.Schema != "" {
		prefix = "model: " + ve.Schema + ": validation failed"
	}
	if len(ve.issues) == 1 {
		return prefix + ": " + ve.issues[0].Error()
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(" (")
	b.WriteString(fmt.Sprint(len(ve.issues)))
	b.WriteString(" issues):")
	for _, fe := range ve.issues {
		b.WriteString("\n  ")
		b.WriteString(fe.Error())
	}
	return b.String()
}

// Unwrap exposes the individual issues to errors.Is/As.
func (ve *ValidationError) Unwrap() []error {
	if ve == nil {
		return nil
	}
	out := make([]error, 0, len(ve.issues))
	for _, fe := range ve.issues {
		out = append(out, fe)
	}
	return out
}

// MarshalJSON exports the error as {schema, issues}.
func (ve *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Schema string       `json:"schema,omitempty"`
		Issues []FieldError `json:"issues"`
	}{
		Schema: ve.Schema,
		Issues: ve.Issues(),
	})
}

// UnknownFieldError reports keys that are not part of a schema. It is raised
// only under UnknownReject.
type UnknownFieldError struct {
	Schema string
	Keys   []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%v in %s: %s", ErrUnknownField, e.Schema, strings.Join(e.Keys, ", "))
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// mergeNested re-homes the issues of a nested decode under prefix.
func (ve *ValidationError) mergeNested(prefix, field string, err error) {
	var nested *ValidationError
	if !errors.As(err, &nested) {
		ve.Add(FieldError{Path: prefix, Field: field, Rule: RuleType, Err: err})
		return
	}
	for _, issue := range nested.issues {
		issue.Path = joinPath(prefix, issue.Path)
		issue.Field = field
		ve.Add(issue)
	}
}

func joinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}
