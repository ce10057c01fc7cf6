// Cinescribe - Conversational Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinescribe

package api

import (
	"context"
	"net/http"
	"strconv"
)

// Identity header names. These are set by the authenticating reverse proxy;
// the service trusts them and never sees credentials.
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Roles recognized on X-User-Role. Unknown values resolve to member.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Identity is the resolved caller of a request.
type Identity struct {
	UserID int
	Role   string
}

// IsAdmin reports whether the caller carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

type identityContextKey struct{}

// ContextWithIdentity returns a context carrying the identity.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, id)
}

// IdentityFromContext returns the request identity, if resolved.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey{}).(Identity)
	return id, ok
}

// RequireIdentity resolves the caller from the trusted proxy headers and
// stores it on the request context. Requests without a usable X-User-ID are
// rejected: missing means 401, malformed means 400.
func RequireIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(headerUserID)
			if raw == "" {
				respondError(w, http.StatusUnauthorized, "UNAUTHORIZED",
					"Missing X-User-ID header", nil)
				return
			}

			userID, err := strconv.Atoi(raw)
			if err != nil || userID <= 0 {
				respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
					"X-User-ID must be a positive integer", nil)
				return
			}

			role := r.Header.Get(headerUserRole)
			if role != RoleAdmin {
				role = RoleMember
			}

			ctx := ContextWithIdentity(r.Context(), Identity{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
