// Package service holds the business logic of the second brain: accounts,
// session tokens, owner-scoped content and public share links.
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the JWT payload. The user id travels in the "id" claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// Auth signs and verifies HS256 session tokens with the server secret.
type Auth struct {
	secret []byte
	// ttl of zero issues tokens without an expiry.
	ttl time.Duration
	now func() time.Time
}

// NewAuth fails with ErrMissingSecret when secret is empty; callers treat
// that as a fatal startup error.
func NewAuth(secret string, ttl time.Duration) (*Auth, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &Auth{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// BuildJWTString issues a token for userID.
func (a *Auth) BuildJWTString(userID string) (string, error) {
	now := a.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
	}
	if a.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(a.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseRawJWT verifies the signature and returns the claims. Every failure
// wraps ErrInvalidToken.
func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	if len(a.secret) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, ErrMissingSecret)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	return claims, nil
}
