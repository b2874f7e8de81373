// Package entity contains the core business objects of the project.
package entity

import "time"

// RoleNamePublic is the default access tier assigned at provisioning time.
// A role with this name must exist before any account can be created.
const RoleNamePublic = "public"

// Role is a named access tier. Read-only from this service's perspective;
// roles are seeded by migrations, never written here.
type Role struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// IsPublic reports whether this is the default "public" role.
func (r *Role) IsPublic() bool {
	return r.Name == RoleNamePublic
}
