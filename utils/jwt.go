package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in access tokens. Purpose separates login tokens from
// password-reset tokens so one can never be used as the other.
type Claims struct {
	UserID  uint   `json:"userId"`
	Role    string `json:"role"`
	Region  string `json:"region"`
	Purpose string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

const (
	PurposeAccess        = ""
	PurposePasswordReset = "password_reset"
)

func GenerateToken(userID uint, role, region, secret string, ttl time.Duration) (string, error) {
	return sign(&Claims{UserID: userID, Role: role, Region: region}, secret, ttl)
}

func GenerateResetToken(userID uint, secret string, ttl time.Duration) (string, error) {
	return sign(&Claims{UserID: userID, Purpose: PurposePasswordReset}, secret, ttl)
}

func sign(claims *Claims, secret string, ttl time.Duration) (string, error) {
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	claims.IssuedAt = jwt.NewNumericDate(time.Now())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
