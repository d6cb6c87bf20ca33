package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
	"github.com/ekaraca/blackboard/internal/pkg/auth"
	"github.com/ekaraca/blackboard/internal/pkg/logger"
)

// AuthService defines signup and credential verification.
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (string, error)
	SignIn(ctx context.Context, username, password string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	tx    txRunner
	users userStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(tx txRunner, users userStore) AuthService {
	return &authServiceImpl{
		tx:    tx,
		users: users,
	}
}

// SignUp hashes the password and inserts the user inside a transaction
// scope, returning the assigned username.
func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (string, error) {
	if strings.TrimSpace(req.UserName) == "" {
		return "", fmt.Errorf("%w: user_name cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Password == "" {
		return "", fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	// The wire value is the enum literal in either case
	role, err := models.ParseRole(strings.ToLower(req.Role))
	if err != nil {
		return "", fmt.Errorf("%w: role must be one of %q, %q", apperrors.ErrValidationFailed,
			models.RoleProfessor, models.RoleStudent)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Username:     req.UserName,
		PasswordHash: passwordHash,
		Name:         req.Name,
		StudentID:    req.StudentID,
		Role:         role,
	}

	var username string
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		username, err = s.users.Insert(ctx, tx, user)
		return err
	})
	if err != nil {
		return "", err
	}

	logger.Info().Str("username", username).Str("role", role.String()).Msg("User signed up")
	return username, nil
}

// SignIn verifies credentials and returns the stored identity. A wrong
// password fails with ErrInvalidCredentials; a missing user with
// ErrUserNotFound; a corrupt stored digest with ErrHashingFailed.
func (s *authServiceImpl) SignIn(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// Not a wrong password: the stored digest is unusable
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.Info().Str("username", user.Username).Msg("User signed in")
	return user, nil
}
