// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package chat

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain outcomes. The boundary layer maps these to
// transport status codes.
var (
	// ErrSessionNotFound indicates the requested session does not exist.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrForbidden indicates the session belongs to a different user.
	ErrForbidden = errors.New("session belongs to a different user")
)

// ValidationError reports a missing or malformed input field. Malformed
// input never aborts the process; it yields this categorized failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// invalidField builds a ValidationError.
func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
