package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canghafiz/xsell-bff/models"
)

// The login_data token is issued and signed by the upstream backend; the BFF
// never holds the signing secret. DecodeLoginToken therefore unpacks the
// payload without signature verification — it is a display/identity hint,
// not an authorization decision. The upstream re-validates the token on
// every forwarded request.

var ErrInvalidLoginToken = errors.New("invalid login token")

type loginClaims struct {
	Data models.User `json:"data"`
	jwt.RegisteredClaims
}

// DecodeLoginToken extracts the user profile from a login_data JWT.
func DecodeLoginToken(token string) (*models.User, error) {
	claims := &loginClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Join(ErrInvalidLoginToken, err)
	}
	if claims.Data.UserID == 0 || claims.Data.Email == "" {
		return nil, ErrInvalidLoginToken
	}
	user := claims.Data
	return &user, nil
}

// ExtractBearerToken extracts the JWT from an Authorization header.
// Format: "Bearer <token>".
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) <= len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(bearerPrefix):], nil
}
