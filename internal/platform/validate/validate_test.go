// Copyright (c) 2026 Movieapp. All rights reserved.
// Author: hidesh

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidesh/movieapp/internal/platform/apperr"
	"github.com/hidesh/movieapp/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Great", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("content", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "content", ae.Details[0].Field)
		})
	}
}

/*
TestValidator_Identifiers checks catalog identifier formats.
*/
func TestValidator_Identifiers(t *testing.T) {
	tests := []struct {
		name    string
		check   func(v *validate.Validator)
		isValid bool
	}{
		{"title_ok", func(v *validate.Validator) { v.TitleID("tconst", "tt0000001") }, true},
		{"title_person_prefix", func(v *validate.Validator) { v.TitleID("tconst", "nm0000001") }, false},
		{"title_empty", func(v *validate.Validator) { v.TitleID("tconst", "") }, false},
		{"person_ok", func(v *validate.Validator) { v.PersonID("nconst", "nm0000102") }, true},
		{"person_suffix", func(v *validate.Validator) { v.PersonID("nconst", "nm12x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.check(v)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("content", "").
		MaxLen("content", "abcdef", 3).
		FloatRange("rating", 11, 0, 10).
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
