package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the JWT token payload.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"eml"`
	OwnerID   string `json:"oid"` // the shared/owner partition identifier
	Role      string `json:"role"`
	TokenType string `json:"typ"` // "access" or "refresh"
	SessionID string `json:"sid,omitempty"`
}

// Token types distinguish short-lived access tokens from the refresh tokens
// tracked in the session registry.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ErrInvalidToken is returned when a JWT cannot be parsed or has expired.
var ErrInvalidToken = errors.New("auth: invalid or expired token")

// IssueAccessToken creates a signed JWT access token.
func IssueAccessToken(secret, email, ownerID, role string, ttl time.Duration) (string, error) {
	return issueToken(secret, email, ownerID, role, TokenTypeAccess, "", ttl)
}

// IssueRefreshToken creates a signed JWT refresh token carrying the session
// ID the refresh endpoint checks against the session registry.
func IssueRefreshToken(secret, email, ownerID, role, sessionID string, ttl time.Duration) (string, error) {
	return issueToken(secret, email, ownerID, role, TokenTypeRefresh, sessionID, ttl)
}

func issueToken(secret, email, ownerID, role, tokenType, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "rentfolio",
		},
		Email:     email,
		OwnerID:   ownerID,
		Role:      role,
		TokenType: tokenType,
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth.issueToken: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a JWT token string. Returns the embedded claims.
func ValidateToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("auth.ValidateToken: %w", ErrInvalidToken)
	}

	if !token.Valid {
		return nil, fmt.Errorf("auth.ValidateToken: %w", ErrInvalidToken)
	}

	return claims, nil
}
