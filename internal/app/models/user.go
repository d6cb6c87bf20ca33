package models

// User defines the user model based on the 'users' table. The username is
// the natural key; users are immutable after creation.
type User struct {
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"` // excluded from JSON
	Name         string `json:"name" db:"name"`
	StudentID    string `json:"student_id" db:"student_id"`
	Role         Role   `json:"role" db:"role"`
}
