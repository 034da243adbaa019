// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payvel/payvel/internal/platform/apperr"
	"github.com/payvel/payvel/internal/platform/validate"
)

/*
TestIsUUID checks the UUID shape predicate used by the entity setters.
*/
func TestIsUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid_v4", "123e4567-e89b-12d3-a456-426614174000", true},
		{"valid_uppercase", "123E4567-E89B-12D3-A456-426614174000", true},
		{"invalid_text", "invalid-id", false},
		{"missing_group", "123e4567-e89b-12d3-a456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, validate.IsUUID(tt.value))
		})
	}
}

/*
TestIsEmail checks the deliberately loose local@domain.tld shape.
*/
func TestIsEmail(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid", "test@example.com", true},
		{"valid_subdomain", "a@b.co.uk", true},
		{"no_at", "invalid-email", false},
		{"no_tld", "test@example", false},
		{"spaces", "te st@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, validate.IsEmail(tt.value))
		})
	}
}

/*
TestHasPasswordComplexity verifies the four-class password rule.
*/
func TestHasPasswordComplexity(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"all_classes", "P@ssw0rd", true},
		{"no_special_or_upper", "password123", false},
		{"no_digit", "P@ssword", false},
		{"no_lower", "P@SSW0RD", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, validate.HasPasswordComplexity(tt.value))
		})
	}
}

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Payvel", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("login", "alogin").
		MinLen("login", "alogin", 3).
		MaxLen("login", "alogin", 50).
		Email("email", "a@payvel.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_CollectsAllFailures verifies the validator does not short-circuit.
*/
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("login", "").
		Email("email", "not-an-email").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}
