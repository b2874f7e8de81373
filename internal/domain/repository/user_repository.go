// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"quorum/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByIDAndToken retrieves a user matching both the id and the exact
	// stored token value. ErrUserNotFound covers both a wrong id and a wrong
	// token; callers are not told which leg failed.
	FindByIDAndToken(ctx context.Context, id uuid.UUID, token string) (*entity.User, error)

	// Create persists a new user, writing only the statically allowed column
	// set. The token column is never part of an insert.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the mutable identity fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SetToken stores token as the single outstanding one-time credential,
	// overwriting any prior value. A nil token clears the slot.
	SetToken(ctx context.Context, id uuid.UUID, token *string) error

	// ConsumeToken clears the token only where id and token still match.
	// It reports whether a row was actually consumed; false means another
	// caller got there first or the token never matched.
	ConsumeToken(ctx context.Context, id uuid.UUID, token string) (bool, error)

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// Delete removes the user; profile rows cascade in the store.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAndCount returns the filtered page and the total count of matching
	// rows independent of the pagination window.
	FindAndCount(ctx context.Context, filter UserFilter) ([]*entity.User, int64, error)
}
