// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package httptypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableText_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Notes NullableText `json:"notes"`
	}

	t.Run("absent key stays unset", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Notes.Set)
		assert.Nil(t, p.Notes.Value)
	})

	t.Run("explicit null is set with nil value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &p))
		assert.True(t, p.Notes.Set)
		assert.Nil(t, p.Notes.Value)
	})

	t.Run("whitespace collapses to null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"   "}`), &p))
		assert.True(t, p.Notes.Set)
		assert.Nil(t, p.Notes.Value)
	})

	t.Run("values are trimmed", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"  paid in cash  "}`), &p))
		require.NotNil(t, p.Notes.Value)
		assert.Equal(t, "paid in cash", *p.Notes.Value)
	})

	t.Run("non-string input errors", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"notes":42}`), &p))
	})
}

func TestNewValidator_NullableText(t *testing.T) {
	type payload struct {
		Name  NullableText `validate:"required,max=5"`
		Email NullableText `validate:"omitempty,email"`
	}

	v := NewValidator()

	t.Run("required fails on null", func(t *testing.T) {
		assert.Error(t, v.Struct(payload{Name: NullableText{Set: true}}))
	})

	t.Run("tags apply to the decoded string", func(t *testing.T) {
		long := "too long for the tag"
		assert.Error(t, v.Struct(payload{Name: NullableText{Set: true, Value: &long}}))
	})

	t.Run("omitempty skips null", func(t *testing.T) {
		ok := "short"
		assert.NoError(t, v.Struct(payload{Name: NullableText{Set: true, Value: &ok}}))
	})
}
