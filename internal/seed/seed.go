package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	appModels "github.com/ekaraca/blackboard/internal/app/models"
	appRepos "github.com/ekaraca/blackboard/internal/app/repositories"
	"github.com/ekaraca/blackboard/internal/db"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
	"github.com/ekaraca/blackboard/internal/pkg/auth"
)

// CreateDefaultData inserts a demo professor, two students and one course
// so a fresh development database has something to poke at. Duplicate
// rows from a previous run are skipped, any other failure is collected
// and returned without stopping the remaining inserts.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(database.Pool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	users := []struct {
		username  string
		name      string
		studentID string
		role      appModels.Role
	}{
		{username: "demo_prof", name: "Demo Professor", role: appModels.RoleProfessor},
		{username: "demo_alice", name: "Alice Demo", studentID: "s1001", role: appModels.RoleStudent},
		{username: "demo_bob", name: "Bob Demo", studentID: "s1002", role: appModels.RoleStudent},
	}

	for _, u := range users {
		digest, err := auth.HashPassword("password123")
		if err != nil {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error hashing seed password")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		user := &appModels.User{
			Username:     u.username,
			PasswordHash: digest,
			Name:         u.name,
			StudentID:    u.studentID,
			Role:         u.role,
		}
		err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			_, insertErr := repos.User.Insert(ctx, tx, user)
			return insertErr
		})
		if err != nil && !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			lgr.Error().Err(err).Str("username", u.username).Msg("Error creating seed user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	course := &appModels.Course{
		CourseID:    "demo101",
		ProfessorID: "demo_prof",
		CourseName:  "Introduction to Demos",
		EnrolledIDs: []string{"s1001"},
	}
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, insertErr := repos.Course.Insert(ctx, tx, course)
		return insertErr
	})
	if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
		lgr.Error().Err(err).Str("courseId", course.CourseID).Msg("Error creating seed course")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
