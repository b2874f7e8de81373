package repository

import (
	"context"
	"errors"

	"quorum/internal/domain/entity"
)

// ErrRoleNotFound is returned when no role carries the requested name.
// During provisioning this aborts the whole transaction: an account must
// never exist without its default role assignment.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository resolves access tiers. Roles are seeded by migrations and
// read-only from this service's perspective.
type RoleRepository interface {
	// FindByName retrieves a single role by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}
