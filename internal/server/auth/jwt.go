// Package auth implements the identity primitives of the service: signed
// time-limited tokens and one-way password hashing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkravets/tasklist/internal/common"
)

// Claims carries the registered claims plus the authenticated identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// GenerateToken mints an HS256 token for the given identity, expiring after
// validityDuration.
func GenerateToken(userID int64, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies signature, signing method and expiry, and returns the
// embedded identity. Every failure maps to common.ErrInvalidToken; the
// caller cannot distinguish a forged token from an expired one.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
