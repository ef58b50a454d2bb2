package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/umid/rosterhub/internal/app/models"
	"github.com/umid/rosterhub/internal/app/models/dto"
	"github.com/umid/rosterhub/internal/app/repositories"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
	"github.com/umid/rosterhub/internal/pkg/auth"
)

// authService implements AuthService
type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateScope checks branch/group requirements for the role: admins
// need a branch, teachers need a branch and a group.
func validateScope(role models.Role, branch, group string) error {
	switch role {
	case models.RoleAdmin:
		if branch == "" {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "branch is required for admin accounts")
		}
	case models.RoleTeacher:
		if branch == "" || group == "" {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "branch and group are required for teacher accounts")
		}
	}
	return nil
}

// Register creates a new account. Registration is open to
// unauthenticated callers but restricted to the three recognized roles.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (string, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(req.Username) == "" {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "username cannot be empty")
	}
	if req.Password == "" {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, "password cannot be empty")
	}
	if err := validateScope(role, req.Branch, req.Group); err != nil {
		return "", err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     role,
	}
	if req.Branch != "" {
		user.Branch = &req.Branch
	}
	if req.Group != "" {
		user.Group = &req.Group
	}

	if _, err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return "", err
		}
		s.logger.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return "", fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User registered")
	return fmt.Sprintf("User added: %s, role: %s", user.Username, user.Role), nil
}

// Login verifies credentials and issues a bearer token. A missing user
// and a wrong password produce the same error.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error resolving user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("Failed to issue token")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
