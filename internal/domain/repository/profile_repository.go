package repository

import (
	"context"

	"quorum/internal/domain/entity"
)

// ProfileRepository persists the user-to-role binding created at provisioning
// time. Profiles are written exactly once and never updated here.
type ProfileRepository interface {
	// Create persists a new profile row linking a user to a role.
	Create(ctx context.Context, profile *entity.Profile) error
}
