package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CredentialUsecase rotates a user's password. The plaintext never leaves
// this layer; only the salted hash reaches the store.
type CredentialUsecase interface {
	// UpdatePassword hashes newPassword and replaces the stored hash.
	// The outstanding token, if any, is untouched.
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
}
