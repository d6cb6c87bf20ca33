package dto

import "github.com/ekaraca/blackboard/internal/app/models"

// AddLectureRequest creates a lecture under a course. The creation
// timestamp is assigned by the store, never by the caller.
type AddLectureRequest struct {
	LectureID   string `json:"lecture_id" binding:"required"`
	CourseID    string `json:"course_id" binding:"required"`
	ProfessorID string `json:"professor_id" binding:"required"`
	Content     string `json:"content"`
}

// GetLecturesRequest lists the lectures of a single course.
type GetLecturesRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// GetEnrolledLecturesRequest lists every lecture visible to a student
// across their enrolled courses.
type GetEnrolledLecturesRequest struct {
	StudentID string `json:"student_id" binding:"required"`
}

// LectureResponse is the wire shape of a lecture. CreatedAt is the
// canonical epoch-milliseconds serialization of the store-assigned
// timestamp, used uniformly on every lecture-returning route.
type LectureResponse struct {
	LectureID   string `json:"lecture_id"`
	CourseID    string `json:"course_id"`
	ProfessorID string `json:"professor_id"`
	Content     string `json:"content"`
	CreatedAt   int64  `json:"created_at"`
}

// NewLectureResponse converts a stored lecture to its wire shape.
func NewLectureResponse(l *models.Lecture) LectureResponse {
	return LectureResponse{
		LectureID:   l.LectureID,
		CourseID:    l.CourseID,
		ProfessorID: l.ProfessorID,
		Content:     l.Content,
		CreatedAt:   l.CreatedAt.UnixMilli(),
	}
}

// NewLectureResponses converts a lecture slice preserving order.
func NewLectureResponses(lectures []*models.Lecture) []LectureResponse {
	out := make([]LectureResponse, 0, len(lectures))
	for _, l := range lectures {
		out = append(out, NewLectureResponse(l))
	}
	return out
}
