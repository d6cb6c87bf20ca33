package models

// Course represents a course owned by a professor. CourseID is the
// natural key chosen by the caller; ID is the store-assigned surrogate.
// EnrolledIDs is the ordered membership array of student usernames; the
// store does not enforce uniqueness within it.
type Course struct {
	ID          int64    `json:"id" db:"id"`
	CourseID    string   `json:"course_id" db:"course_id"`
	ProfessorID string   `json:"professor_id" db:"professor_id"`
	CourseName  string   `json:"course_name" db:"course_name"`
	EnrolledIDs []string `json:"enrolled_ids" db:"enrolled_ids"`
}
