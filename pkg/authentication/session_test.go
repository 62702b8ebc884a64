// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndVerify(t *testing.T) {
	m := NewSessionManager("test-secret", 24*time.Hour, false)

	token, err := m.IssueToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestSessionManager_RejectsExpiredToken(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute, false)

	token, err := m.IssueToken("user-123")
	require.NoError(t, err)

	_, err = m.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestSessionManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewSessionManager("secret-a", 24*time.Hour, false)
	verifier := NewSessionManager("secret-b", 24*time.Hour, false)

	token, err := issuer.IssueToken("user-123")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.Error(t, err)
}

func TestSessionManager_RejectsGarbage(t *testing.T) {
	m := NewSessionManager("test-secret", 24*time.Hour, false)

	_, err := m.VerifyToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}
