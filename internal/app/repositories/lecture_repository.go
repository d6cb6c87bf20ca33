package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
	"github.com/ekaraca/blackboard/internal/pkg/dberrors"
	"github.com/ekaraca/blackboard/internal/pkg/logger"
)

// LectureRepository handles lecture persistence. Lectures are immutable
// and never deleted; created_at is assigned by the store at insert time.
type LectureRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLectureRepository creates a new LectureRepository
func NewLectureRepository(db *pgxpool.Pool) *LectureRepository {
	return &LectureRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert writes a lecture inside the caller's transaction and returns the
// assigned lecture_id. The caller never supplies created_at. A lecture_id
// collision fails with apperrors.ErrLectureAlreadyExists.
func (r *LectureRepository) Insert(ctx context.Context, tx pgx.Tx, lecture *models.Lecture) (string, error) {
	sql, args, err := r.sb.Insert("lectures").
		Columns("lecture_id", "course_id", "professor_id", "content").
		Values(lecture.LectureID, lecture.CourseID, lecture.ProfessorID, lecture.Content).
		Suffix("RETURNING lecture_id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert lecture query: %w", err)
	}

	var lectureID string
	if err := tx.QueryRow(ctx, sql, args...).Scan(&lectureID); err != nil {
		if dberrors.IsUniqueViolationOnConstraint(err, "lectures_lecture_id_key") {
			return "", apperrors.NewCustomError(apperrors.ErrLectureAlreadyExists,
				fmt.Sprintf("lecture %q already exists", lecture.LectureID))
		}
		logger.Error().Err(err).Str("lectureID", lecture.LectureID).Msg("Error executing insert lecture query")
		return "", classifyQueryError(err, "error inserting lecture")
	}

	return lectureID, nil
}

// GetByCourseID retrieves the lectures of a course, unordered.
func (r *LectureRepository) GetByCourseID(ctx context.Context, courseID string) ([]*models.Lecture, error) {
	query := r.selectLectures().Where(squirrel.Eq{"course_id": courseID})
	return r.queryLectures(ctx, query, "error getting lectures by course")
}

// GetByEnrolledCourses retrieves every lecture belonging to a course the
// student is enrolled in, most recent first. The ordering is a
// caller-visible guarantee.
func (r *LectureRepository) GetByEnrolledCourses(ctx context.Context, studentID string) ([]*models.Lecture, error) {
	query := r.sb.Select(
		"lectures.lecture_id", "lectures.course_id", "lectures.professor_id",
		"lectures.content", "lectures.created_at").
		From("lectures").
		Join("courses ON lectures.course_id = courses.course_id").
		Where(squirrel.Expr("? = ANY(courses.enrolled_ids)", studentID)).
		OrderBy("lectures.created_at DESC")
	return r.queryLectures(ctx, query, "error getting lectures for enrolled courses")
}

func (r *LectureRepository) selectLectures() squirrel.SelectBuilder {
	return r.sb.Select("lecture_id", "course_id", "professor_id", "content", "created_at").
		From("lectures")
}

func (r *LectureRepository) queryLectures(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*models.Lecture, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lecture query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing lecture query")
		return nil, classifyQueryError(err, op)
	}
	defer rows.Close()

	lectures := make([]*models.Lecture, 0)
	for rows.Next() {
		lecture := &models.Lecture{}
		if err := rows.Scan(&lecture.LectureID, &lecture.CourseID, &lecture.ProfessorID, &lecture.Content, &lecture.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: lecture row: %v", apperrors.ErrRowDecode, err)
		}
		lectures = append(lectures, lecture)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyQueryError(err, op)
	}

	return lectures, nil
}
