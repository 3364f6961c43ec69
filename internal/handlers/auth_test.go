package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siteguard/siteguard-api/internal/dto"
)

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "New User",
		"email":    "New.User@Example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	decodeData(t, w, &resp)
	require.Equal(t, "New User", resp.User.Name)
	require.Equal(t, "new.user@example.com", resp.User.Email, "email should be lowercased")
	require.NotEmpty(t, resp.Token)

	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "supersecret")
}

// Fields that survive binding but are blank after trimming must be a
// validation error, not an internal one.
func TestAuthHandler_Signup_WhitespaceFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "   ",
		"email":    "someone@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeEnvelope(t, w)
	require.Equal(t, "error", resp.Status)
	require.Equal(t, "VALIDATION_ERROR", resp.Type)
	require.Contains(t, resp.Message, "required")
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.signupUser(t, "First", "taken@example.com")

	w := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":     "Second",
		"email":    "taken@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	resp := decodeEnvelope(t, w)
	require.Equal(t, "error", resp.Status)
	require.Equal(t, "CONFLICT", resp.Type)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	env.signupUser(t, "Existing", "existing@example.com")

	w := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	decodeData(t, w, &resp)
	require.Equal(t, "existing@example.com", resp.User.Email)
	require.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "someone@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// A wrong password and an unknown email must be indistinguishable in the
// response.
func TestAuthHandler_Login_UniformFailure(t *testing.T) {
	env := setupTestEnv(t)
	env.signupUser(t, "Existing", "existing@example.com")

	wrongPassword := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "existing@example.com",
		"password": "not-the-password",
	})
	unknownEmail := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	require.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestRequireAuth_RejectsBadTokens(t *testing.T) {
	env := setupTestEnv(t)

	noToken := env.do(t, http.MethodGet, "/workspaces", "", nil)
	require.Equal(t, http.StatusUnauthorized, noToken.Code)

	garbage := env.do(t, http.MethodGet, "/workspaces", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, garbage.Code)
}

func TestRequireAuth_RejectsTokenOfDeletedUser(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "Ghost", "ghost@example.com")

	require.NoError(t, env.db.Exec("DELETE FROM users").Error)

	w := env.do(t, http.MethodGet, "/workspaces", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
