// Copyright 2026 LandlordOS Ltd
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerDoesNotPanic(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().AuthFailure("10.0.0.1")
	l.Security().RateLimited("10.0.0.1", "/api/auth/login")
	l.Security().SystemShutdown()
}
