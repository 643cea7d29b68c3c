package domain

import (
	"time"

	"github.com/google/uuid"
)

// Business is a directory listing owned by a business_owner user.
type Business struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description *string
	Address     *string
	Phone       *string
	Website     *string
	Latitude    *float64
	Longitude   *float64
	Verified    bool
	LikeCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category groups businesses in the directory.
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
}
