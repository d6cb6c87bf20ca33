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

// CourseRepository handles course persistence, including the enrollment
// membership array. Enroll and withdraw are single store-evaluated
// array updates so two racing calls cannot lose each other's write.
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert writes a course inside the caller's transaction and returns the
// store-assigned surrogate id. A course_id collision fails with
// apperrors.ErrCourseAlreadyExists.
func (r *CourseRepository) Insert(ctx context.Context, tx pgx.Tx, course *models.Course) (int64, error) {
	enrolled := course.EnrolledIDs
	if enrolled == nil {
		enrolled = []string{}
	}

	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "professor_id", "course_name", "enrolled_ids").
		Values(course.CourseID, course.ProfessorID, course.CourseName, enrolled).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert course query: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolationOnConstraint(err, "courses_course_id_key") {
			return 0, apperrors.NewCustomError(apperrors.ErrCourseAlreadyExists,
				fmt.Sprintf("course %q already exists", course.CourseID))
		}
		logger.Error().Err(err).Str("courseID", course.CourseID).Msg("Error executing insert course query")
		return 0, classifyQueryError(err, "error inserting course")
	}

	return id, nil
}

// GetByProfessorID retrieves the courses owned by a professor, unordered.
func (r *CourseRepository) GetByProfessorID(ctx context.Context, professorID string) ([]*models.Course, error) {
	query := r.selectCourses().Where(squirrel.Eq{"professor_id": professorID})
	return r.queryCourses(ctx, query, "error getting courses by professor")
}

// GetAll retrieves every course, unordered.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, r.selectCourses(), "error getting all courses")
}

// GetByStudentID retrieves the courses whose membership array contains
// the student, unordered.
func (r *CourseRepository) GetByStudentID(ctx context.Context, studentID string) ([]*models.Course, error) {
	query := r.selectCourses().Where(squirrel.Expr("? = ANY(enrolled_ids)", studentID))
	return r.queryCourses(ctx, query, "error getting courses by student")
}

// Enroll appends the student to the course's membership array inside the
// caller's transaction. The append is evaluated by the store, not read
// back and rewritten, and performs no uniqueness check. A missing course
// fails with apperrors.ErrCourseNotFound.
func (r *CourseRepository) Enroll(ctx context.Context, tx pgx.Tx, courseID, studentID string) error {
	sql, args, err := r.sb.Update("courses").
		Set("enrolled_ids", squirrel.Expr("array_append(enrolled_ids, ?)", studentID)).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build enroll query: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID).Str("studentID", studentID).Msg("Error executing enroll query")
		return classifyQueryError(err, "error enrolling student")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Withdraw removes every occurrence of the student from the course's
// membership array inside the caller's transaction. A missing course
// fails with apperrors.ErrCourseNotFound.
func (r *CourseRepository) Withdraw(ctx context.Context, tx pgx.Tx, courseID, studentID string) error {
	sql, args, err := r.sb.Update("courses").
		Set("enrolled_ids", squirrel.Expr("array_remove(enrolled_ids, ?)", studentID)).
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build withdraw query: %w", err)
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID).Str("studentID", studentID).Msg("Error executing withdraw query")
		return classifyQueryError(err, "error withdrawing student")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select("id", "course_id", "professor_id", "course_name", "enrolled_ids").
		From("courses")
}

func (r *CourseRepository) queryCourses(ctx context.Context, query squirrel.SelectBuilder, op string) ([]*models.Course, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course query")
		return nil, classifyQueryError(err, op)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.CourseID, &course.ProfessorID, &course.CourseName, &course.EnrolledIDs); err != nil {
			return nil, fmt.Errorf("%w: course row: %v", apperrors.ErrRowDecode, err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyQueryError(err, op)
	}

	return courses, nil
}
