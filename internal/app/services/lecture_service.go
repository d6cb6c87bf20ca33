package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

// LectureService defines lecture creation and the two read paths.
type LectureService interface {
	Create(ctx context.Context, lecture *models.Lecture) (string, error)
	GetByCourse(ctx context.Context, courseID string) ([]*models.Lecture, error)
	GetByEnrolledCourses(ctx context.Context, studentID string) ([]*models.Lecture, error)
}

// lectureServiceImpl implements the LectureService interface
type lectureServiceImpl struct {
	tx       txRunner
	lectures lectureStore
}

// NewLectureService creates a new lecture service instance
func NewLectureService(tx txRunner, lectures lectureStore) LectureService {
	return &lectureServiceImpl{
		tx:       tx,
		lectures: lectures,
	}
}

// Create inserts a lecture inside a transaction scope and returns the
// assigned lecture_id. The creation timestamp is left to the store.
func (s *lectureServiceImpl) Create(ctx context.Context, lecture *models.Lecture) (string, error) {
	if lecture == nil {
		return "", fmt.Errorf("%w: lecture is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(lecture.LectureID) == "" {
		return "", fmt.Errorf("%w: lecture_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(lecture.CourseID) == "" {
		return "", fmt.Errorf("%w: course_id cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(lecture.ProfessorID) == "" {
		return "", fmt.Errorf("%w: professor_id cannot be empty", apperrors.ErrValidationFailed)
	}

	var lectureID string
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		lectureID, err = s.lectures.Insert(ctx, tx, lecture)
		return err
	})
	if err != nil {
		return "", err
	}
	return lectureID, nil
}

// GetByCourse lists the lectures of one course.
func (s *lectureServiceImpl) GetByCourse(ctx context.Context, courseID string) ([]*models.Lecture, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, fmt.Errorf("%w: course_id cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.lectures.GetByCourseID(ctx, courseID)
}

// GetByEnrolledCourses lists every lecture visible to a student across
// their enrolled courses, most recent first.
func (s *lectureServiceImpl) GetByEnrolledCourses(ctx context.Context, studentID string) ([]*models.Lecture, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("%w: student_id cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.lectures.GetByEnrolledCourses(ctx, studentID)
}
