package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims embedded in an admin session token.
type SessionClaims struct {
	AdminID string `json:"id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256 session tokens. The server keeps no
// session state: possession of a valid, unexpired signature is sufficient.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token validity window.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Generate signs a token carrying the admin id and role, expiring exactly
// one validity window from issuance.
func (t *TokenIssuer) Generate(adminID, role string) (string, error) {
	now := t.now()
	claims := SessionClaims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and verifies a token string, returning its claims.
func (t *TokenIssuer) Validate(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
