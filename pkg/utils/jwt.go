package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims represents the claims in a terminal session token. Tokens are
// minted by the platform's auth service; this process only verifies them.
type SessionClaims struct {
	UserID     uuid.UUID `json:"user_id"`
	TerminalID string    `json:"terminal_id"`
	Grants     []string  `json:"grants"`
	jwt.RegisteredClaims
}

// TokenVerifier validates session tokens issued by the platform.
type TokenVerifier struct {
	secretKey []byte
}

// NewTokenVerifier creates a new token verifier
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secretKey: []byte(secret)}
}

// Verify validates a session token and returns its claims
func (v *TokenVerifier) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Sign mints a session token. Production tokens come from the auth service;
// this exists for local development and tests.
func (v *TokenVerifier) Sign(userID uuid.UUID, terminalID string, grants []string, expiry time.Duration) (string, error) {
	claims := &SessionClaims{
		UserID:     userID,
		TerminalID: terminalID,
		Grants:     grants,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "pos-terminal",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secretKey)
}
