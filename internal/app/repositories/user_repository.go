package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
	"github.com/ekaraca/blackboard/internal/pkg/dberrors"
	"github.com/ekaraca/blackboard/internal/pkg/logger"
)

// UserRepository handles user persistence. Users are immutable after
// creation; there is no update or delete path.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert writes a user inside the caller's transaction and returns the
// assigned username. A username collision fails with
// apperrors.ErrUsernameAlreadyExists.
func (r *UserRepository) Insert(ctx context.Context, tx pgx.Tx, user *models.User) (string, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("username", "password_hash", "name", "student_id", "role").
		Values(user.Username, user.PasswordHash, user.Name, user.StudentID, user.Role.String()).
		Suffix("RETURNING username").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert user query: %w", err)
	}

	var username string
	if err := tx.QueryRow(ctx, sql, args...).Scan(&username); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return "", apperrors.NewCustomError(apperrors.ErrUsernameAlreadyExists,
				fmt.Sprintf("username %q is taken", user.Username))
		}
		logger.Error().Err(err).Str("username", user.Username).Msg("Error executing insert user query")
		return "", classifyQueryError(err, "error inserting user")
	}

	return username, nil
}

// GetByUsername retrieves a user by username. An absent user is
// (nil, nil), not an error.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select("username", "password_hash", "name", "student_id", "role").
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user := &models.User{}
	var role string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.Username, &user.PasswordHash, &user.Name, &user.StudentID, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning user row")
		return nil, classifyQueryError(err, "error getting user by username")
	}

	user.Role, err = models.ParseRole(role)
	if err != nil {
		// Schema drift: the stored row cannot be reconstructed
		return nil, fmt.Errorf("%w: user %q: %v", apperrors.ErrRowDecode, username, err)
	}

	return user, nil
}
