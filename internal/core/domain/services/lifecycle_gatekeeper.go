package services

import (
	"fmt"
	"slices"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/orderrequest"
	"sales/internal/core/domain/model/ordersale"
)

// RoleCapability decides which roles lift the lifecycle restrictions.
type RoleCapability interface {
	HasAdminCapability(roles []kernel.Role) bool
}

// NamedRoleCapability grants the admin capability to holders of one named role.
type NamedRoleCapability struct {
	adminRole kernel.Role
}

// NewNamedRoleCapability creates a capability check for the given admin role name.
func NewNamedRoleCapability(adminRole kernel.Role) NamedRoleCapability {
	return NamedRoleCapability{adminRole: adminRole}
}

// HasAdminCapability reports whether roles contain the admin role.
func (c NamedRoleCapability) HasAdminCapability(roles []kernel.Role) bool {
	return slices.Contains(roles, c.adminRole)
}

// LifecycleSnapshot is everything the gatekeeper needs to judge one sale.
//
// SaleID is zero when the caller is about to create a sale. Sale and Request
// are nil when the referenced record does not exist.
type LifecycleSnapshot struct {
	SaleID           kernel.ID
	Sale             *ordersale.OrderSale
	Request          *orderrequest.OrderRequest
	Roles            []kernel.Role
	TransferReceipts int64
}

// SoftValidation is the outcome of LifecycleGatekeeper.SoftValidate.
type SoftValidation struct {
	IsDelivered    bool
	IsInProduction bool
}

// LifecycleGatekeeper decides whether an order sale may be edited or deleted.
//
// Business rules:
//   - admins are never restricted
//   - a delivered sale cannot be edited
//   - no sale of a request in production can be edited
//   - a sale with transfer receipts cannot be deleted
//   - a missing sale counts as delivered and a missing request as in production
type LifecycleGatekeeper struct {
	capability RoleCapability
}

// NewLifecycleGatekeeper creates a gatekeeper using capability to recognise admins.
func NewLifecycleGatekeeper(capability RoleCapability) LifecycleGatekeeper {
	return LifecycleGatekeeper{capability: capability}
}

// RequiresExtraValidation reports whether the caller is subject to lifecycle restrictions.
func (g LifecycleGatekeeper) RequiresExtraValidation(roles []kernel.Role) bool {
	return !g.capability.HasAdminCapability(roles)
}

// SoftValidate returns the delivered and in-production flags for the snapshot.
// Both flags are computed independently and are always false for admins.
func (g LifecycleGatekeeper) SoftValidate(s LifecycleSnapshot) SoftValidation {
	if !g.RequiresExtraValidation(s.Roles) {
		return SoftValidation{}
	}

	return SoftValidation{
		IsDelivered:    !s.SaleID.IsZero() && (s.Sale == nil || s.Sale.IsDelivered()),
		IsInProduction: s.Request == nil || s.Request.IsInProduction(),
	}
}

// IsEditable reports whether the sale is neither delivered nor in production.
func (g LifecycleGatekeeper) IsEditable(s LifecycleSnapshot) bool {
	v := g.SoftValidate(s)
	return !v.IsDelivered && !v.IsInProduction
}

// IsDeletable reports whether the sale is editable and has no transfer receipts.
func (g LifecycleGatekeeper) IsDeletable(s LifecycleSnapshot) bool {
	return len(g.DeletionBlockers(s)) == 0
}

// DeletionBlockers lists every reason preventing the deletion of the sale.
func (g LifecycleGatekeeper) DeletionBlockers(s LifecycleSnapshot) []string {
	v := g.SoftValidate(s)

	blockers := make([]string, 0)
	if v.IsDelivered {
		blockers = append(blockers, "sale is already delivered")
	}
	if v.IsInProduction {
		blockers = append(blockers, "order request is in production")
	}
	if s.TransferReceipts > 0 {
		blockers = append(blockers, fmt.Sprintf("transfer receipts count = %d", s.TransferReceipts))
	}
	return blockers
}
