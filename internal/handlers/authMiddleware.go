package handlers

import (
	"context"
	"net/http"
	"strings"

	utility "trafficmaster/internal/utility"
)

type contextKey string

// ClaimsContextKey carries the verified token claims through the request
// context once the admin gate has passed.
const ClaimsContextKey contextKey = "claims"

// Decision is the outcome of an authorization check: either the request is
// allowed through with its verified claims, or it is denied with the HTTP
// status and reason to send back.
type Decision struct {
	Allowed bool
	Status  int
	Reason  string
	Claims  *utility.SignedDetails
}

// Authorizer gates admin-only endpoints on a valid bearer token.
type Authorizer struct {
	tokens *utility.TokenManager
}

func NewAuthorizer(tokens *utility.TokenManager) *Authorizer {
	return &Authorizer{tokens: tokens}
}

// Authorize verifies the Authorization header of a request. Token problems
// deny with 401; a valid token whose role is not "admin" denies with 403.
func (a *Authorizer) Authorize(r *http.Request) Decision {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Decision{Status: http.StatusUnauthorized, Reason: "Unauthorized: No token provided"}
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Decision{Status: http.StatusUnauthorized, Reason: "Unauthorized: Invalid token"}
	}

	claims, errMsg := a.tokens.ValidateToken(parts[1])
	if errMsg != "" {
		return Decision{Status: http.StatusUnauthorized, Reason: "Unauthorized: Invalid token"}
	}
	if claims.Role != "admin" {
		return Decision{Status: http.StatusForbidden, Reason: "Forbidden: Access denied"}
	}

	return Decision{Allowed: true, Status: http.StatusOK, Claims: claims}
}

// RequireAdmin wraps handlers that must only run for authenticated admins.
func (a *Authorizer) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := a.Authorize(r)
		if !decision.Allowed {
			respondError(w, decision.Status, decision.Reason)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, decision.Claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
