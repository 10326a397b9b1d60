package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	utility "trafficmaster/internal/utility"
)

const testSecret = "test-secret"

func signClaims(t *testing.T, claims *utility.SignedDetails) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthorizeMissingHeader(t *testing.T) {
	auth := NewAuthorizer(utility.NewTokenManager(testSecret))

	r := httptest.NewRequest(http.MethodGet, "/admin/all", nil)
	decision := auth.Authorize(r)

	assert.False(t, decision.Allowed)
	assert.Equal(t, http.StatusUnauthorized, decision.Status)
}

func TestAuthorizeMalformedHeader(t *testing.T) {
	auth := NewAuthorizer(utility.NewTokenManager(testSecret))

	for _, header := range []string{"garbage", "Token abc", "Bearer not-a-token"} {
		r := httptest.NewRequest(http.MethodGet, "/admin/all", nil)
		r.Header.Set("Authorization", header)

		decision := auth.Authorize(r)
		assert.False(t, decision.Allowed, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, decision.Status, "header %q", header)
	}
}

func TestAuthorizeWrongRole(t *testing.T) {
	auth := NewAuthorizer(utility.NewTokenManager(testSecret))

	token := signClaims(t, &utility.SignedDetails{
		Username: "bob",
		Role:     "editor",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})
	r := httptest.NewRequest(http.MethodGet, "/admin/all", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	decision := auth.Authorize(r)
	assert.False(t, decision.Allowed)
	assert.Equal(t, http.StatusForbidden, decision.Status)
}

func TestAuthorizeValidAdminToken(t *testing.T) {
	tokens := utility.NewTokenManager(testSecret)
	auth := NewAuthorizer(tokens)

	token, err := tokens.GenerateAdminToken("alice")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/all", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	decision := auth.Authorize(r)
	require.True(t, decision.Allowed)
	assert.Equal(t, "alice", decision.Claims.Username)
	assert.Equal(t, "admin", decision.Claims.Role)
}

func TestRequireAdminBlocksAndPasses(t *testing.T) {
	tokens := utility.NewTokenManager(testSecret)
	auth := NewAuthorizer(tokens)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(ClaimsContextKey).(*utility.SignedDetails)
		require.True(t, ok)
		assert.Equal(t, "alice", claims.Username)
		called = true
	})
	gate := auth.RequireAdmin(next)

	// No token: denied, next never runs.
	w := httptest.NewRecorder()
	gate.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/all", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	assert.JSONEq(t, `{"error": "Unauthorized: No token provided"}`, w.Body.String())

	// Valid admin token: passed through with claims in context.
	token, err := tokens.GenerateAdminToken("alice")
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/admin/all", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	w = httptest.NewRecorder()
	gate.ServeHTTP(w, r)
	assert.True(t, called)
}
