package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's signature verifies but the
	// expiration claim has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for every other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// GenerateJWTToken issues a signed HMAC-SHA256 token for the given user.
// The user id is encoded as the subject claim.
func GenerateJWTToken(issuer string, userID uint64, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || ttl == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWTToken verifies signature, expiration and issuer and returns the
// user id from the subject claim. Expiration is reported as ErrTokenExpired,
// every other failure as ErrTokenInvalid.
func ValidateJWTToken(tokenString, signKey, issuer string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return userID, nil
}

// ParseBearerToken extracts the token from an Authorization header of the
// form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(authorizationHeader))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
