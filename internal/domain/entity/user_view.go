package entity

import (
	"time"

	"github.com/google/uuid"
)

// The user projections form a closed set ordered by decreasing sensitivity:
// auth-flow ⊇ same-user ⊇ public. Each is a pure function from the full
// record to a fixed field subset; callers pick the projection matching their
// trust level, the store is never asked to shape the row.

// AuthFlowUserView is the internal authentication projection. It carries the
// password hash and the outstanding token and must never be serialized to an
// external client.
type AuthFlowUserView struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Token        *string   `json:"token"`
	CreatedAt    time.Time `json:"created_at"`
}

// SameUserView is what a user sees of their own record: contact details
// included, credentials withheld.
type SameUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUserView is safe for third-party display: no credentials, no email.
type PublicUserView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthFlowUserView projects the full record for the internal auth flow.
func NewAuthFlowUserView(u *User) *AuthFlowUserView {
	if u == nil {
		return nil
	}

	return &AuthFlowUserView{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Token:        u.Token,
		CreatedAt:    u.CreatedAt,
	}
}

// NewSameUserView projects the record for the owning user.
func NewSameUserView(u *User) *SameUserView {
	if u == nil {
		return nil
	}

	return &SameUserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// NewPublicUserView projects the record for anonymous or third-party callers.
func NewPublicUserView(u *User) *PublicUserView {
	if u == nil {
		return nil
	}

	return &PublicUserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
