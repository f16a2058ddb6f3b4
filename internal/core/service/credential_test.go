package service

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

func TestApplyPasswordHash_HashesChangedPassword(t *testing.T) {
	u := &domain.User{Password: "plaintext"}

	w, err := ApplyPasswordHash(PendingWrite{User: u, PasswordChanged: true})
	if err != nil {
		t.Fatalf("ApplyPasswordHash returned error: %v", err)
	}
	if w.User.Password == "plaintext" {
		t.Fatalf("expected password to be hashed")
	}
	if !strings.HasPrefix(w.User.Password, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", w.User.Password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(w.User.Password), []byte("plaintext")); err != nil {
		t.Fatalf("stored hash does not match original password: %v", err)
	}
}

func TestApplyPasswordHash_SkipsUnchangedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("plaintext"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := &domain.User{Password: string(hash)}

	w, err := ApplyPasswordHash(PendingWrite{User: u, PasswordChanged: false})
	if err != nil {
		t.Fatalf("ApplyPasswordHash returned error: %v", err)
	}
	if w.User.Password != string(hash) {
		t.Fatalf("unchanged password was rewritten")
	}
	// Verification must still succeed after any number of save cycles.
	for i := 0; i < 3; i++ {
		w, err = ApplyPasswordHash(w)
		if err != nil {
			t.Fatalf("save cycle %d: %v", i, err)
		}
	}
	if !VerifyPassword(w.User.Password, "plaintext") {
		t.Fatalf("password no longer verifies after repeated saves")
	}
}

func TestApplyPasswordHash_EmptyPassword(t *testing.T) {
	u := &domain.User{}
	if _, err := ApplyPasswordHash(PendingWrite{User: u, PasswordChanged: true}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if !VerifyPassword(string(hash), "s3cret") {
		t.Fatalf("expected match for correct password")
	}
	if VerifyPassword(string(hash), "wrong") {
		t.Fatalf("expected mismatch for wrong password")
	}
}
