package validation

import (
	"fmt"
	"math"

	"fraudscore/internal/errors"
)

// Validator collects per-field validation messages
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records message for field. The first message per field is kept.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; exists {
		return
	}
	v.Errors[field] = message
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Err returns an invalid-input DomainError when any check failed, nil otherwise.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return errors.Invalid(v.Errors)
}

// Present checks that a decoded optional value was supplied
func (v *Validator) Present(field string, value *float64) bool {
	v.Check(value != nil, field, MsgRequired)
	return value != nil
}

// Finite checks that a number is neither NaN nor infinite
func (v *Validator) Finite(field string, value float64) bool {
	ok := !math.IsNaN(value) && !math.IsInf(value, 0)
	v.Check(ok, field, MsgNotFinite)
	return ok
}

// Integer checks that a finite number has no fractional part
func (v *Validator) Integer(field string, value float64) bool {
	if !v.Finite(field, value) {
		return false
	}
	ok := value == math.Trunc(value) && math.Abs(value) <= MaxSafeInteger
	v.Check(ok, field, MsgNotInteger)
	return ok
}

// Binary checks that an indicator is exactly 0 or 1
func (v *Validator) Binary(field string, value float64) bool {
	ok := value == 0 || value == 1
	v.Check(ok, field, MsgNotBinary)
	return ok
}

// GreaterThan checks that value is strictly above min
func (v *Validator) GreaterThan(field string, value, min float64) {
	v.Check(value > min, field, fmt.Sprintf("must be greater than %v", min))
}

// AtMostOne checks that no more than one of the flags is set
func (v *Validator) AtMostOne(field string, flags ...int) {
	set := 0
	for _, f := range flags {
		if f != 0 {
			set++
		}
	}
	v.Check(set <= 1, field, MsgMultipleIndicators)
}
