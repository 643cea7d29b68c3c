package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered application user. Users are never deleted,
// only deactivated: IsActive=false blocks login, token refresh, and every
// capability check.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated actor attached to a request. It carries
// only what authorization decisions need.
type Principal struct {
	ID       uuid.UUID
	Role     Role
	IsActive bool
}

// Principal derives the authorization view of the user.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Role: u.Role, IsActive: u.IsActive}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
