// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token part from an "Authorization: Bearer
// <token>" header value. Returns an error if the header is missing, has the
// wrong shape, or carries an empty token.
func ParseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpired reports whether the bearer token's exp claim lies in the past.
//
// The token is parsed without signature verification: the console cannot (and
// must not) verify server-issued tokens, it only uses the expiry to decide
// whether a "session expired" prompt is warranted before issuing a request.
// Malformed tokens and tokens without an exp claim count as expired.
func TokenExpired(tokenString string, now time.Time) bool {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return true
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return exp.Time.Before(now)
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT with issuer, subject, and
// expiry claims. Used by the development stub server to issue logon tokens.
//
// Returns an error if any parameter is empty or zero, or if signing fails.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || subject == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}
