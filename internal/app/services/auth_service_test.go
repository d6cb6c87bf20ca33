package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/db"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
	"github.com/ekaraca/blackboard/internal/pkg/auth"
)

// fakeTxRunner stands in for the pool-backed transaction scope. It runs
// the function with a nil tx (the fake stores ignore it) and can inject
// a commit failure.
type fakeTxRunner struct {
	commitErr error
	scopes    int
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.scopes++
	if err := fn(ctx, nil); err != nil {
		return err
	}
	return f.commitErr
}

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) Insert(_ context.Context, _ pgx.Tx, user *models.User) (string, error) {
	if _, exists := f.users[user.Username]; exists {
		return "", apperrors.ErrUsernameAlreadyExists
	}
	stored := *user
	f.users[user.Username] = &stored
	return user.Username, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func TestSignUpThenSignIn(t *testing.T) {
	runner := &fakeTxRunner{}
	store := newFakeUserStore()
	svc := NewAuthService(runner, store)
	ctx := context.Background()

	username, err := svc.SignUp(ctx, &dto.SignUpRequest{
		UserName:  "alice",
		Password:  "pw1",
		Name:      "Alice",
		StudentID: "s-100",
		Role:      "Student",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if username != "alice" {
		t.Fatalf("signup returned %q, want alice", username)
	}
	if runner.scopes != 1 {
		t.Fatalf("signup must run in one transaction scope, got %d", runner.scopes)
	}

	user, err := svc.SignIn(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if user.Username != "alice" || user.Role != models.RoleStudent {
		t.Fatalf("signin returned wrong identity: %+v", user)
	}

	// Wrong password is an authentication failure, not an internal error
	_, err = svc.SignIn(ctx, "alice", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.SignIn(ctx, "nobody", "pw1")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSignUpStoresDigestNotPlaintext(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(&fakeTxRunner{}, store)

	if _, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		UserName: "alice", Password: "pw1", Name: "Alice", Role: "student",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	stored := store.users["alice"]
	if stored.PasswordHash == "pw1" {
		t.Fatal("password must not be stored in plaintext")
	}
	ok, err := auth.VerifyPassword("pw1", stored.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored digest must verify the original password (ok=%v, err=%v)", ok, err)
	}
}

func TestSignUpDuplicateUsername(t *testing.T) {
	svc := NewAuthService(&fakeTxRunner{}, newFakeUserStore())
	ctx := context.Background()

	req := &dto.SignUpRequest{UserName: "alice", Password: "pw1", Name: "Alice", Role: "student"}
	if _, err := svc.SignUp(ctx, req); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.SignUp(ctx, req); !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := NewAuthService(&fakeTxRunner{}, newFakeUserStore())
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.SignUpRequest
	}{
		{"empty username", dto.SignUpRequest{Password: "pw1", Name: "x", Role: "student"}},
		{"empty password", dto.SignUpRequest{UserName: "alice", Name: "x", Role: "student"}},
		{"unknown role", dto.SignUpRequest{UserName: "alice", Password: "pw1", Name: "x", Role: "admin"}},
		{"empty role", dto.SignUpRequest{UserName: "alice", Password: "pw1", Name: "x"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, &test.req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
		})
	}
}

func TestSignUpAcceptsEnumLiteralCase(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(&fakeTxRunner{}, store)

	if _, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		UserName: "knuth", Password: "pw1", Name: "Don", Role: "Professor",
	}); err != nil {
		t.Fatalf("signup with capitalized role failed: %v", err)
	}
	if store.users["knuth"].Role != models.RoleProfessor {
		t.Fatalf("role = %q, want professor", store.users["knuth"].Role)
	}
}

func TestSignUpCommitFailureSurfaces(t *testing.T) {
	commitErr := errors.New("failed to commit transaction")
	svc := NewAuthService(&fakeTxRunner{commitErr: commitErr}, newFakeUserStore())

	_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
		UserName: "alice", Password: "pw1", Name: "Alice", Role: "student",
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("commit failure must propagate, got %v", err)
	}
}

func TestSignInCorruptDigestIsNotAWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	store.users["alice"] = &models.User{
		Username:     "alice",
		PasswordHash: "not-a-bcrypt-digest",
		Role:         models.RoleStudent,
	}
	svc := NewAuthService(&fakeTxRunner{}, store)

	_, err := svc.SignIn(context.Background(), "alice", "pw1")
	if !errors.Is(err, apperrors.ErrHashingFailed) {
		t.Fatalf("expected ErrHashingFailed for corrupt digest, got %v", err)
	}
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatal("corrupt digest must be distinguishable from a wrong password")
	}
}
