// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"pethub/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the verified identity attached to a request by the authentication
// middleware. Use cases trust it for ownership and role checks.
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(entity.RoleAdmin)
}
