// Package errors defines the domain error taxonomy shared by the scoring
// service, its transports and the model loader.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DomainError is an error with a stable machine-readable code.
// Two DomainErrors match under errors.Is when their codes are equal.
type DomainError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *DomainError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, e.fieldSummary())
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DomainError carrying the same code.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func (e *DomainError) fieldSummary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// Wrap returns a copy of base with err attached as the cause.
func Wrap(base *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    base.Code,
		Message: base.Message,
		Err:     err,
	}
}

// Invalid returns an invalid-input error carrying per-field messages.
func Invalid(fields map[string]string) *DomainError {
	return &DomainError{
		Code:    ErrInvalidInput.Code,
		Message: ErrInvalidInput.Message,
		Fields:  fields,
	}
}

// FieldsOf extracts per-field messages from err, if any.
func FieldsOf(err error) map[string]string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}
