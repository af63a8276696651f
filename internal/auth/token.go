package auth

import (
	"errors"
	"fmt"

	"github.com/dgrijalva/jwt-go"
)

// Identity is the verified caller identity decoded from a bearer token.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// Claims is the JWT claim set the identity provider mints. The realm rides
// in the user_type claim so authenticated calls never trust a caller-supplied
// realm selector.
type Claims struct {
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

// VerifyToken validates the bearer token signature (HS256 against the
// configured signing secret) and expiry, and decodes the caller identity.
func VerifyToken(tokenString, secret string) (*Identity, error) {
	if secret == "" {
		return nil, errors.New("auth signing secret not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	userType := claims.UserType
	if userType == "" {
		userType = "jobseeker"
	}

	return &Identity{
		ID:       claims.Subject,
		Email:    claims.Email,
		UserType: userType,
	}, nil
}
