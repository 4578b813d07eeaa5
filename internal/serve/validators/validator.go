package validators

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Validator collects field errors, keyed by the name of the offending request field. Only the first
// error of each field is kept.
type Validator struct {
	Errors map[string]any
}

func NewValidator() *Validator {
	return &Validator{Errors: map[string]any{}}
}

func (v *Validator) HasErrors() bool {
	return len(v.Errors) > 0
}

// Check registers message for key when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// CheckRequired rejects empty values with "<key> is required".
func (v *Validator) CheckRequired(value, key string) {
	v.Check(value != "", key, fmt.Sprintf("%s is required", key))
}

// CheckPrefix rejects values that do not start with prefix.
func (v *Validator) CheckPrefix(value, prefix, key string) {
	v.Check(strings.HasPrefix(value, prefix), key, fmt.Sprintf("%s must start with %q", key, prefix))
}

// CheckMatches rejects values that do not match the regular expression pattern.
func (v *Validator) CheckMatches(value, pattern, key, message string) {
	v.Check(govalidator.Matches(value, pattern), key, message)
}

func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}
