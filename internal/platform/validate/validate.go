// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

// Package validate provides the field validation rules shared by the domain
// entities and the HTTP delivery layer.
//
// # Architecture
//
// Two styles live here:
//
//   - Predicates ([IsUUID], [IsEmail], ...) used by entity setters, which
//     short-circuit on the first violation and carry exact domain messages.
//   - A chainable [Validator] that collects field-level errors before
//     returning a single [apperr.AppError], used by request handlers.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/payvel/payvel/internal/platform/apperr"
)

var (
	// uuidRegex matches the 8-4-4-4-12 hex group shape, any UUID version.
	uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

	// emailRegex is the deliberately simple local@domain.tld shape. Full RFC
	// parsing rejects addresses the rest of the platform accepts, so the
	// looser rule is kept on purpose.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// passwordSpecialRegex is the fixed punctuation set a password must draw from.
	passwordSpecialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	passwordUpperRegex = regexp.MustCompile(`[A-Z]`)
	passwordLowerRegex = regexp.MustCompile(`[a-z]`)
	passwordDigitRegex = regexp.MustCompile(`\d`)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// # Predicates

// IsUUID reports whether the value is a well-formed UUID string
// (case-insensitive, any version).
func IsUUID(value string) bool {
	return uuidRegex.MatchString(strings.ToLower(value))
}

// IsEmail reports whether the value matches the platform's email shape.
func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// HasPasswordComplexity reports whether the value contains at least one
// uppercase letter, one lowercase letter, one digit, and one special
// character from the fixed punctuation set.
func HasPasswordComplexity(value string) bool {
	return passwordUpperRegex.MatchString(value) &&
		passwordLowerRegex.MatchString(value) &&
		passwordDigitRegex.MatchString(value) &&
		passwordSpecialRegex.MatchString(value)
}

// # Chainable Validator

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Email fails if the value does not match the platform's email shape.
func (v *Validator) Email(field, value string) *Validator {
	if !IsEmail(value) {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// UUID fails if the value is not a well-formed UUID string.
func (v *Validator) UUID(field, value string) *Validator {
	if !IsUUID(value) {
		v.add(field, "Must be a valid UUID")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("value", value <= 0, "Must be a positive number")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
