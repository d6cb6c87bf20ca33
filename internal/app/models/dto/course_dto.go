package dto

// AddCourseRequest creates a course under a professor's username.
type AddCourseRequest struct {
	ProfessorID string   `json:"professor_id" binding:"required"`
	CourseID    string   `json:"course_id" binding:"required"`
	CourseName  string   `json:"course_name" binding:"required"`
	EnrolledIDs []string `json:"enrolled_ids"`
}

// GetCoursesRequest lists the courses owned by a professor.
type GetCoursesRequest struct {
	ProfessorID string `json:"professor_id" binding:"required"`
}

// EnrollRequest appends a student to a course's membership array.
type EnrollRequest struct {
	CourseID  string `json:"course_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// GetStudentCoursesRequest lists the courses a student is enrolled in.
type GetStudentCoursesRequest struct {
	StudentID string `json:"student_id" binding:"required"`
}

// RemoveStudentRequest removes every occurrence of a student from a
// course's membership array.
type RemoveStudentRequest struct {
	CourseID  string `json:"course_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}
