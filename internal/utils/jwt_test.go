package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("siteguard-test", 42, time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateJWTToken(token, "secret", "siteguard-test")
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestValidateJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken("siteguard-test", 42, -time.Minute, "secret")
	require.NoError(t, err)

	_, err = ValidateJWTToken(token, "secret", "siteguard-test")
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateJWTToken_WrongKeyOrIssuer(t *testing.T) {
	token, err := GenerateJWTToken("siteguard-test", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateJWTToken(token, "other-secret", "siteguard-test")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ValidateJWTToken(token, "secret", "other-issuer")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ValidateJWTToken("garbage", "secret", "siteguard-test")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", 42, time.Hour, "secret")
	require.Error(t, err)

	_, err = GenerateJWTToken("siteguard-test", 42, 0, "secret")
	require.Error(t, err)

	_, err = GenerateJWTToken("siteguard-test", 42, time.Hour, "")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("")
	require.Error(t, err)

	_, err = ParseBearerToken("abc.def.ghi")
	require.Error(t, err)

	_, err = ParseBearerToken("Bearer")
	require.Error(t, err)
}
