package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/siteguard/siteguard-api/internal/models"
	"github.com/siteguard/siteguard-api/internal/repository"
	"github.com/siteguard/siteguard-api/internal/utils"
)

var (
	ErrMissingSignupFields  = errors.New("name, email and password are required")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrInvalidToken         = errors.New("invalid or expired token")
)

// AuthService handles signup, login and bearer-token verification.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
	jwtIssuer string
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
		tokenTTL:  tokenTTL,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup creates a new user and issues a bearer token bound to it.
func (s *AuthService) Signup(input SignupInput) (*models.User, string, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, "", ErrMissingSignupFields
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", ErrFailedToCreateUser
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user with a fresh token. An
// unknown email and a wrong password produce the same error so the response
// never discloses which one failed.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// VerifyToken validates a bearer token and resolves it to a stored user.
// Expired and malformed tokens are logged separately but both surface as
// ErrInvalidToken; a valid token for a deleted user is rejected the same way.
func (s *AuthService) VerifyToken(tokenString string) (*models.User, error) {
	userID, err := utils.ValidateJWTToken(tokenString, s.jwtSecret, s.jwtIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			log.WithError(err).Debug("rejected expired token")
		} else {
			log.WithError(err).Debug("rejected malformed token")
		}
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithField("user_id", userID).Debug("rejected token for deleted user")
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueToken(userID uint64) (string, error) {
	token, err := utils.GenerateJWTToken(s.jwtIssuer, userID, s.tokenTTL, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
