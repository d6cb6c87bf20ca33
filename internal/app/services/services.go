package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/db"
)

// txRunner is the transaction scope the services run mutations in.
// *db.PostgresDB satisfies it.
type txRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// userStore is the slice of UserRepository the services depend on.
type userStore interface {
	Insert(ctx context.Context, tx pgx.Tx, user *models.User) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// courseStore is the slice of CourseRepository the services depend on.
type courseStore interface {
	Insert(ctx context.Context, tx pgx.Tx, course *models.Course) (int64, error)
	GetByProfessorID(ctx context.Context, professorID string) ([]*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByStudentID(ctx context.Context, studentID string) ([]*models.Course, error)
	Enroll(ctx context.Context, tx pgx.Tx, courseID, studentID string) error
	Withdraw(ctx context.Context, tx pgx.Tx, courseID, studentID string) error
}

// lectureStore is the slice of LectureRepository the services depend on.
type lectureStore interface {
	Insert(ctx context.Context, tx pgx.Tx, lecture *models.Lecture) (string, error)
	GetByCourseID(ctx context.Context, courseID string) ([]*models.Lecture, error)
	GetByEnrolledCourses(ctx context.Context, studentID string) ([]*models.Lecture, error)
}
