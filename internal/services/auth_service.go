package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"outfitrental/internal/apperrors"
	"outfitrental/internal/auth"
	"outfitrental/internal/models"
	"outfitrental/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// AuthService handles user sign-up, sign-in and token handling.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
	events   EventPublisher
	recorder Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager, events EventPublisher, recorder Recorder) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		validate: newValidator(),
		events:   events,
		recorder: recorder,
	}
}

// RegisterUser validates the email and the plaintext password, hashes the
// password in place and persists the user. On success user.Password holds
// the hash, never the plaintext.
func (s *AuthService) RegisterUser(ctx context.Context, user *models.User) error {
	user.Email = strings.TrimSpace(user.Email)

	vErr := validateStruct(s.validate, user)
	if vErr == nil {
		vErr = &apperrors.ValidationError{}
	}
	if user.Password == "" {
		vErr.Add("password", "failed on the 'required' tag")
	} else if err := auth.ValidatePassword(user.Password); err != nil {
		vErr.Add("password", err.Error())
	}
	if vErr.HasErrors() {
		return vErr
	}

	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	switch {
	case err == nil && existing != nil:
		return fmt.Errorf("email '%s' already registered: %w", user.Email, apperrors.ErrConflict)
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ID = ""

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	recordCreated(s.recorder, "user")
	publishEvent(ctx, s.events, EventUserRegistered, map[string]string{
		"userId":   user.ID,
		"userName": user.UserName,
	})
	return nil
}

// LoginUser checks the credentials and returns the user with a fresh token.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("failed to look up user: %w", err)
		}
		s.signinFailed(ctx)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.Password) {
		s.signinFailed(ctx)
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken issues a bearer token for an existing user.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and verifies a bearer token.
func (s *AuthService) ValidateToken(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}

func (s *AuthService) signinFailed(ctx context.Context) {
	slog.InfoContext(ctx, "sign-in rejected")
	if s.recorder != nil {
		s.recorder.SigninFailed()
	}
}
