package dto

// SignUpRequest is the payload for user registration. Role accepts the
// enum literal in either case ("Student" or "student").
type SignUpRequest struct {
	UserName  string `json:"user_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Name      string `json:"name" binding:"required"`
	StudentID string `json:"student_id"`
	Role      string `json:"role" binding:"required"`
}

// SignInRequest is the payload for credential verification.
type SignInRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}
