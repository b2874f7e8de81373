// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record. The ID is generated client-side as a
// random UUID at provisioning time, never by the store. PasswordHash holds
// the bcrypt digest; the plaintext never reaches this struct. Token holds at
// most one outstanding single-use credential, nil when no flow is pending.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Username     string
	Email        string  // Unique across users, enforced by the store.
	PasswordHash string  // Always a hash at rest, never plaintext.
	Token        *string // Nil means NO_TOKEN; otherwise exactly one opaque value.
	Profile      *Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasToken reports whether the user currently has an outstanding one-time token.
func (u *User) HasToken() bool {
	return u.Token != nil && *u.Token != ""
}

// Profile binds a User to a Role. It is created exactly once, inside the
// provisioning transaction, and never updated afterwards.
type Profile struct {
	ID        int64
	UserID    uuid.UUID
	RoleID    int64
	Role      *Role
	CreatedAt time.Time
}
