package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

// CourseService defines course creation, listing and enrollment.
type CourseService interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByProfessor(ctx context.Context, professorID string) ([]*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByStudent(ctx context.Context, studentID string) ([]*models.Course, error)
	Enroll(ctx context.Context, courseID, studentID string) error
	Withdraw(ctx context.Context, courseID, studentID string) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	tx      txRunner
	courses courseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(tx txRunner, courses courseStore) CourseService {
	return &courseServiceImpl{
		tx:      tx,
		courses: courses,
	}
}

// Create inserts a course inside a transaction scope and returns the
// store-assigned surrogate id.
func (s *courseServiceImpl) Create(ctx context.Context, course *models.Course) (int64, error) {
	if course == nil {
		return 0, fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.CourseID) == "" {
		return 0, fmt.Errorf("%w: course_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.ProfessorID) == "" {
		return 0, fmt.Errorf("%w: professor_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.CourseName) == "" {
		return 0, fmt.Errorf("%w: course_name cannot be empty", apperrors.ErrValidationFailed)
	}

	var id int64
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		id, err = s.courses.Insert(ctx, tx, course)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByProfessor lists the courses owned by a professor.
func (s *courseServiceImpl) GetByProfessor(ctx context.Context, professorID string) ([]*models.Course, error) {
	if strings.TrimSpace(professorID) == "" {
		return nil, fmt.Errorf("%w: professor_id cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.courses.GetByProfessorID(ctx, professorID)
}

// GetAll lists every course.
func (s *courseServiceImpl) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courses.GetAll(ctx)
}

// GetByStudent lists the courses a student is enrolled in.
func (s *courseServiceImpl) GetByStudent(ctx context.Context, studentID string) ([]*models.Course, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.courses.GetByStudentID(ctx, studentID)
}

// Enroll appends the student to the course membership inside a
// transaction scope.
func (s *courseServiceImpl) Enroll(ctx context.Context, courseID, studentID string) error {
	if err := validateEnrollmentInput(courseID, studentID); err != nil {
		return err
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.courses.Enroll(ctx, tx, courseID, studentID)
	})
}

// Withdraw removes all occurrences of the student from the course
// membership inside a transaction scope.
func (s *courseServiceImpl) Withdraw(ctx context.Context, courseID, studentID string) error {
	if err := validateEnrollmentInput(courseID, studentID); err != nil {
		return err
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.courses.Withdraw(ctx, tx, courseID, studentID)
	})
}

func validateEnrollmentInput(courseID, studentID string) error {
	if strings.TrimSpace(courseID) == "" {
		return fmt.Errorf("%w: course_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(studentID) == "" {
		return fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}
