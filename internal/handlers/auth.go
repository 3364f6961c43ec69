package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteguard/siteguard-api/internal/dto"
	apierrors "github.com/siteguard/siteguard-api/internal/errors"
	"github.com/siteguard/siteguard-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup registers a new user and returns it with a bearer token.
func (h *AuthHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Signup(services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Signup successful", dto.AuthResponse{
		User:  dto.ToUserDTO(*user),
		Token: token,
	})
}

// Login authenticates a user and returns a fresh bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dto.Success(c, http.StatusOK, "Login successful", dto.AuthResponse{
		User:  dto.ToUserDTO(*user),
		Token: token,
	})
}
