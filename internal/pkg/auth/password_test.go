package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	passwords := []string{
		"pw1",
		"",
		"correct horse battery staple",
		"пароль-with-unicode-ñ",
	}

	for _, pw := range passwords {
		digest, err := HashPassword(pw)
		if err != nil {
			t.Fatalf("HashPassword(%q) failed: %v", pw, err)
		}
		if !strings.HasPrefix(digest, "$2") {
			t.Fatalf("expected bcrypt digest for %q, got %q", pw, digest)
		}

		ok, err := VerifyPassword(pw, digest)
		if err != nil {
			t.Fatalf("VerifyPassword(%q) failed: %v", pw, err)
		}
		if !ok {
			t.Fatalf("expected %q to verify against its own digest", pw)
		}
	}
}

func TestVerifyWrongPasswordIsMismatchNotError(t *testing.T) {
	digest, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	ok, err := VerifyPassword("wrong", digest)
	if err != nil {
		t.Fatalf("mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail verification")
	}
}

func TestVerifyMalformedDigestFails(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-hash"},
		{"truncated", "$2a$12$short"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := VerifyPassword("pw1", test.digest)
			if err == nil {
				t.Fatal("expected an error for malformed digest")
			}
			if !errors.Is(err, apperrors.ErrHashingFailed) {
				t.Fatalf("expected ErrHashingFailed, got: %v", err)
			}
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Fatal("expected two hashes of the same password to differ")
	}
}
