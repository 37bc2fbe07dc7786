// Package userrolerepo resolves user roles from the user_roles table.
package userrolerepo

import (
	"context"

	"sales/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// UserRoleDTO is a row of the user_roles table.
type UserRoleDTO struct {
	UserID int64  `gorm:"primaryKey;autoIncrement:false"`
	Role   string `gorm:"primaryKey;type:varchar(64)"`
}

func (UserRoleDTO) TableName() string {
	return "user_roles"
}

// GormRoleProvider implements RoleProvider using GORM.
type GormRoleProvider struct {
	db *gorm.DB
}

// NewGormRoleProvider creates a role provider reading from db.
func NewGormRoleProvider(db *gorm.DB) *GormRoleProvider {
	return &GormRoleProvider{db: db}
}

// Roles returns the roles held by the user, sorted by name. Unknown users hold no role.
func (p *GormRoleProvider) Roles(ctx context.Context, userID kernel.ID) ([]kernel.Role, error) {
	var names []string
	err := p.db.WithContext(ctx).
		Model(&UserRoleDTO{}).
		Where("user_id = ?", userID.Int64()).
		Order("role").
		Pluck("role", &names).Error
	if err != nil {
		return nil, err
	}

	roles := make([]kernel.Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, kernel.Role(name))
	}
	return roles, nil
}
