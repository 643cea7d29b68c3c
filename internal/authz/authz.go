// Package authz decides whether a principal may perform a named
// capability. It is a pure function of (principal, capability): no I/O,
// no side effects, and every unknown input fails closed.
package authz

import (
	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

// Capability is a named permission gated by a minimum role.
type Capability string

const (
	CapViewBusinesses       Capability = "view_businesses"
	CapLikeBusiness         Capability = "like_business"
	CapCreateBusiness       Capability = "create_business"
	CapEditOwnBusiness      Capability = "edit_own_business"
	CapAccessAdminPanel     Capability = "access_admin_panel"
	CapEditAnyBusiness      Capability = "edit_any_business"
	CapDeleteBusiness       Capability = "delete_business"
	CapVerifyBusiness       Capability = "verify_business"
	CapManageUsers          Capability = "manage_users"
	CapViewUserList         Capability = "view_user_list"
	CapChangeUserRole       Capability = "change_user_role"
	CapAccessUserManagement Capability = "access_user_management"
	CapCreateCategory       Capability = "create_category"
	CapEditCategory         Capability = "edit_category"
	CapDeleteCategory       Capability = "delete_category"
	CapModerateGuestbook    Capability = "moderate_guestbook"
)

// Table maps each capability to the minimum role that holds it. Keeping
// the mapping in one structure avoids drift between checks performed at
// different call sites.
type Table map[Capability]domain.Role

// DefaultTable returns the capability table of the directory product.
func DefaultTable() Table {
	return Table{
		CapViewBusinesses: domain.RoleViewer,
		CapLikeBusiness:   domain.RoleViewer,

		CapCreateBusiness:   domain.RoleBusinessOwner,
		CapEditOwnBusiness:  domain.RoleBusinessOwner,
		CapAccessAdminPanel: domain.RoleBusinessOwner,

		CapEditAnyBusiness:      domain.RoleAdmin,
		CapDeleteBusiness:       domain.RoleAdmin,
		CapVerifyBusiness:       domain.RoleAdmin,
		CapManageUsers:          domain.RoleAdmin,
		CapViewUserList:         domain.RoleAdmin,
		CapChangeUserRole:       domain.RoleAdmin,
		CapAccessUserManagement: domain.RoleAdmin,
		CapCreateCategory:       domain.RoleAdmin,
		CapEditCategory:         domain.RoleAdmin,
		CapDeleteCategory:       domain.RoleAdmin,
		CapModerateGuestbook:    domain.RoleAdmin,
	}
}

// Authorizer answers capability checks against a fixed table. Construct
// one at process start and share it; it is immutable afterwards.
type Authorizer struct {
	table Table
}

// New creates an Authorizer over the given table.
func New(table Table) *Authorizer {
	return &Authorizer{table: table}
}

// HasRole reports whether the principal holds at least the required role.
// A nil principal, an inactive account, or an unknown role value on
// either side all yield false; the check never errors.
func HasRole(p *domain.Principal, required domain.Role) bool {
	if p == nil || !p.IsActive {
		return false
	}
	rank := p.Role.Rank()
	requiredRank := required.Rank()
	if rank < 0 || requiredRank < 0 {
		return false
	}
	return rank >= requiredRank
}

// Allowed reports whether the principal may perform the capability.
// Unknown capabilities are refused.
func (a *Authorizer) Allowed(p *domain.Principal, c Capability) bool {
	required, ok := a.table[c]
	if !ok {
		return false
	}
	return HasRole(p, required)
}

// CanEditBusiness reports whether the principal may edit the business
// owned by ownerID: admins may edit anything, business owners only their
// own listings.
func (a *Authorizer) CanEditBusiness(p *domain.Principal, ownerID uuid.UUID) bool {
	if a.Allowed(p, CapEditAnyBusiness) {
		return true
	}
	return a.Allowed(p, CapEditOwnBusiness) && p.ID == ownerID
}
