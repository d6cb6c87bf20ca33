package repositories

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
	"github.com/ekaraca/blackboard/internal/pkg/dberrors"
)

// Repositories bundles every repository over the shared pool.
type Repositories struct {
	User    *UserRepository
	Course  *CourseRepository
	Lecture *LectureRepository
}

// NewRepositories creates the repository container.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:    NewUserRepository(pool),
		Course:  NewCourseRepository(pool),
		Lecture: NewLectureRepository(pool),
	}
}

// classifyQueryError maps low-level store failures onto the error
// taxonomy. Connectivity loss mid-operation is surfaced to the caller,
// never treated as fatal.
func classifyQueryError(err error, op string) error {
	if dberrors.IsConnectivityError(err) {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
