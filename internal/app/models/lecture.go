package models

import "time"

// Lecture represents a lecture posted to a course. LectureID is the
// natural key; CreatedAt is assigned by the store at insert time and is
// never set by callers. Lectures are immutable once created.
type Lecture struct {
	LectureID   string    `json:"lecture_id" db:"lecture_id"`
	CourseID    string    `json:"course_id" db:"course_id"`
	ProfessorID string    `json:"professor_id" db:"professor_id"`
	Content     string    `json:"content" db:"content"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
}
