package ports

import (
	"context"

	"sales/internal/core/domain/model/kernel"
)

// RoleProvider resolves the roles held by a user.
type RoleProvider interface {
	Roles(ctx context.Context, userID kernel.ID) ([]kernel.Role, error)
}
