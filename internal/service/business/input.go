package business

import (
	"strings"

	"github.com/google/uuid"

	"github.com/didivui/phongnha-backend/internal/domain"
)

// CreateInput holds the parameters for creating a business listing.
type CreateInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description *string
	Address     *string
	Phone       *string
	Website     *string
	Latitude    *float64
	Longitude   *float64
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	errs = append(errs, validateGeo(i.Latitude, i.Longitude)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for editing a business listing.
type UpdateInput struct {
	BusinessID  uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Description *string
	Address     *string
	Phone       *string
	Website     *string
	Latitude    *float64
	Longitude   *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.BusinessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "business_id", Message: "required"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	errs = append(errs, validateGeo(i.Latitude, i.Longitude)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateGeo(lat, lon *float64) []domain.FieldError {
	var errs []domain.FieldError
	if (lat == nil) != (lon == nil) {
		errs = append(errs, domain.FieldError{Field: "coordinates", Message: "latitude and longitude must be set together"})
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if lon != nil && (*lon < -180 || *lon > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}
	return errs
}

// ListInput holds the parameters for listing businesses.
type ListInput struct {
	CategoryID *uuid.UUID
	// IncludeUnverified is honored only for admins; everyone else sees
	// verified listings exclusively.
	IncludeUnverified bool
	Limit             int
	Offset            int
}
