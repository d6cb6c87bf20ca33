package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

// BcryptCost is the work factor for password hashing.
const BcryptCost = 12

// HashPassword produces a salted one-way hash of the plaintext. Any string
// is hashable; it fails only when the hashing backend does.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrHashingFailed, err)
	}
	return string(bytes), nil
}

// VerifyPassword reports whether password matches the stored digest.
// A normal mismatch is (false, nil). A digest that is not a well-formed
// bcrypt hash fails with apperrors.ErrHashingFailed so corrupt stored
// data is distinguishable from a wrong password.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", apperrors.ErrHashingFailed, err)
	}
}
