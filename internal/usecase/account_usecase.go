// Package usecase defines the application's use case interfaces and their
// input/output DTOs. The delivery layer depends on these interfaces; the
// concrete orchestration lives in the impl subpackage.
package usecase

import (
	"context"

	"quorum/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput carries the caller-supplied fields for provisioning a
// new account. The identifier, password hash, and role binding are produced
// server-side.
type CreateAccountInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// UpdateAccountInput carries the mutable identity fields. Email and
// credentials are deliberately absent; they have dedicated flows.
type UpdateAccountInput struct {
	FirstName string
	LastName  string
	Username  string
}

// AccountUsecase manages the account lifecycle: provisioning with the default
// role, identity updates, and removal.
type AccountUsecase interface {
	// CreateAccount provisions a user, hashes the password, and binds the
	// default role inside a single transaction. If the default role is absent
	// the whole operation rolls back and no account exists afterwards.
	CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.SameUserView, error)

	// UpdateAccount modifies the mutable identity fields of an existing user.
	UpdateAccount(ctx context.Context, userID uuid.UUID, input UpdateAccountInput) (*entity.SameUserView, error)

	// RemoveAccount deletes the user and its role binding.
	RemoveAccount(ctx context.Context, userID uuid.UUID) error
}
