package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/didivui/phongnha-backend/internal/domain"
)

func principal(role domain.Role) *domain.Principal {
	return &domain.Principal{ID: uuid.New(), Role: role, IsActive: true}
}

func TestHasRole_Hierarchy(t *testing.T) {
	t.Parallel()

	roles := []domain.Role{domain.RoleViewer, domain.RoleBusinessOwner, domain.RoleAdmin}

	// Any role satisfies every requirement at or below its own rank.
	for _, held := range roles {
		for _, required := range roles {
			want := held.Rank() >= required.Rank()
			got := HasRole(principal(held), required)
			assert.Equal(t, want, got, "HasRole(%s, %s)", held, required)
		}
	}
}

func TestHasRole_ViewerIsNotAdmin(t *testing.T) {
	t.Parallel()

	assert.False(t, HasRole(principal(domain.RoleViewer), domain.RoleAdmin))
	assert.True(t, HasRole(principal(domain.RoleAdmin), domain.RoleViewer))
}

func TestHasRole_FailsClosed(t *testing.T) {
	t.Parallel()

	t.Run("nil principal", func(t *testing.T) {
		assert.False(t, HasRole(nil, domain.RoleViewer))
	})

	t.Run("inactive principal", func(t *testing.T) {
		p := principal(domain.RoleAdmin)
		p.IsActive = false
		assert.False(t, HasRole(p, domain.RoleViewer))
	})

	t.Run("unknown role", func(t *testing.T) {
		p := &domain.Principal{ID: uuid.New(), Role: "superuser", IsActive: true}
		assert.False(t, HasRole(p, domain.RoleViewer))
	})

	t.Run("unknown required role", func(t *testing.T) {
		// An unrecognized requirement must refuse everyone, admins
		// included, rather than degrade to an is-active check.
		assert.False(t, HasRole(principal(domain.RoleAdmin), domain.Role("superuser")))
	})
}

func TestAuthorizer_Allowed(t *testing.T) {
	t.Parallel()

	a := New(DefaultTable())

	tests := []struct {
		name string
		role domain.Role
		cap  Capability
		want bool
	}{
		{"viewer views businesses", domain.RoleViewer, CapViewBusinesses, true},
		{"viewer likes business", domain.RoleViewer, CapLikeBusiness, true},
		{"viewer cannot create business", domain.RoleViewer, CapCreateBusiness, false},
		{"viewer cannot moderate", domain.RoleViewer, CapModerateGuestbook, false},
		{"owner creates business", domain.RoleBusinessOwner, CapCreateBusiness, true},
		{"owner accesses admin panel", domain.RoleBusinessOwner, CapAccessAdminPanel, true},
		{"owner cannot delete business", domain.RoleBusinessOwner, CapDeleteBusiness, false},
		{"owner cannot manage users", domain.RoleBusinessOwner, CapManageUsers, false},
		{"admin verifies business", domain.RoleAdmin, CapVerifyBusiness, true},
		{"admin changes user role", domain.RoleAdmin, CapChangeUserRole, true},
		{"admin deletes category", domain.RoleAdmin, CapDeleteCategory, true},
		{"admin moderates guestbook", domain.RoleAdmin, CapModerateGuestbook, true},
		{"admin likes business too", domain.RoleAdmin, CapLikeBusiness, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Allowed(principal(tt.role), tt.cap))
		})
	}
}

func TestAuthorizer_Allowed_UnknownCapability(t *testing.T) {
	t.Parallel()

	a := New(DefaultTable())
	assert.False(t, a.Allowed(principal(domain.RoleAdmin), Capability("launch_rockets")))
}

func TestAuthorizer_CanEditBusiness(t *testing.T) {
	t.Parallel()

	a := New(DefaultTable())

	owner := principal(domain.RoleBusinessOwner)

	t.Run("owner edits own business", func(t *testing.T) {
		assert.True(t, a.CanEditBusiness(owner, owner.ID))
	})

	t.Run("owner cannot edit someone else's business", func(t *testing.T) {
		assert.False(t, a.CanEditBusiness(owner, uuid.New()))
	})

	t.Run("admin edits anything", func(t *testing.T) {
		assert.True(t, a.CanEditBusiness(principal(domain.RoleAdmin), uuid.New()))
	})

	t.Run("viewer edits nothing, even with matching id", func(t *testing.T) {
		v := principal(domain.RoleViewer)
		assert.False(t, a.CanEditBusiness(v, v.ID))
	})

	t.Run("inactive owner edits nothing", func(t *testing.T) {
		p := principal(domain.RoleBusinessOwner)
		p.IsActive = false
		assert.False(t, a.CanEditBusiness(p, p.ID))
	})
}
