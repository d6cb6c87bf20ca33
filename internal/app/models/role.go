package models

import (
	"fmt"

	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleProfessor Role = "professor"
	RoleStudent   Role = "student"
)

// ParseRole decodes a role value as stored in the users table. An
// unrecognized value fails with apperrors.ErrUnknownRole; a bad row must
// never take the process down.
func ParseRole(s string) (Role, error) {
	switch s {
	case string(RoleProfessor):
		return RoleProfessor, nil
	case string(RoleStudent):
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownRole, s)
	}
}

// MarshalJSON emits the capitalized wire literal ("Professor",
// "Student") the frontend branches on; the lowercase form is a storage
// detail that must not leak into responses.
func (r Role) MarshalJSON() ([]byte, error) {
	switch r {
	case RoleProfessor:
		return []byte(`"Professor"`), nil
	case RoleStudent:
		return []byte(`"Student"`), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownRole, string(r))
	}
}

// String returns the stored string literal for the role.
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one of the known literals.
func (r Role) Valid() bool {
	return r == RoleProfessor || r == RoleStudent
}
