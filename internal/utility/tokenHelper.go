package utility

import (
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// SignedDetails is the claim set carried by an admin bearer token.
type SignedDetails struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// TokenManager signs and verifies admin tokens with a process-wide secret.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// GenerateAdminToken issues a token for the given admin, valid for one hour.
// There is no refresh and no revocation; a token stays valid until expiry.
func (tm *TokenManager) GenerateAdminToken(username string) (string, error) {
	claims := &SignedDetails{
		Username: username,
		Role:     "admin",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// ValidateToken checks the signature and expiry of a token string. It returns
// the decoded claims, or a non-empty message describing why the token was
// rejected.
func (tm *TokenManager) ValidateToken(signedToken string) (*SignedDetails, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return tm.secret, nil
		},
	)
	if err != nil {
		return nil, err.Error()
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, "the token is invalid"
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, "token is expired"
	}

	return claims, ""
}
