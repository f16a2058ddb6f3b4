package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bazarhub/marketplace-api/internal/core/domain"
)

// PendingWrite pairs a user document about to be persisted with whether the
// password field is part of the delta being written.
type PendingWrite struct {
	User            *domain.User
	PasswordChanged bool
}

// ApplyPasswordHash is the single pre-persist credential transformation. Every
// user write flows through it before reaching a repository.
//
// When the password is not part of the delta the write passes through
// untouched, so repeated saves never re-hash an already-hashed value (which
// would break all future verification). When it is, the plaintext is replaced
// with a fresh salted bcrypt hash. On hash failure nothing is persisted and
// the error is surfaced as domain.ErrHashing.
func ApplyPasswordHash(w PendingWrite) (PendingWrite, error) {
	if !w.PasswordChanged {
		return w, nil
	}
	if w.User == nil || w.User.Password == "" {
		return PendingWrite{}, domain.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(w.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return PendingWrite{}, fmt.Errorf("%w: %v", domain.ErrHashing, err)
	}
	w.User.Password = string(hash)
	return w, nil
}

// VerifyPassword reports whether the candidate plaintext matches the stored
// hash. The hash is never reversed.
func VerifyPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
