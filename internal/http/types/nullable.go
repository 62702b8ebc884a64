// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package httptypes

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NullableText is a JSON string field that distinguishes an explicit
// null from an absent key. Decoded values are trimmed, and values that
// trim to the empty string collapse to null.
type NullableText struct {
	Set   bool
	Value *string
}

func (n *NullableText) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s = strings.TrimSpace(s); s == "" {
		n.Value = nil
		return nil
	}
	n.Value = &s
	return nil
}

// String returns the decoded value, or the empty string for null.
func (n NullableText) String() string {
	if n.Value == nil {
		return ""
	}
	return *n.Value
}

// NewValidator builds the validator shared by the request decoders. It
// registers NullableText so that string tags such as max, email and
// oneof apply to the decoded value, with null reading as absent.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(NullableText); ok {
			if n.Value == nil {
				return nil
			}
			return *n.Value
		}
		return nil
	}, NullableText{})
	return v
}
