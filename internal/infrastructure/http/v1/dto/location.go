package dto

import (
	"bakehouse/internal/domain/catalogs/location"
)

// CreateLocationRequest is the request body for creating a location.
type CreateLocationRequest struct {
	Code       string                `json:"code"`
	Name       string                `json:"name" binding:"required"`
	Type       location.LocationType `json:"type" binding:"required"`
	PrefixCode string                `json:"prefixCode"`
	Address    *string               `json:"address"`
	City       *string               `json:"city"`
	Phone      *string               `json:"phone"`
	Active     *bool                 `json:"active"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateLocationRequest) ToEntity() *location.Location {
	loc := location.NewLocation(r.Code, r.Name, r.Type)
	loc.PrefixCode = r.PrefixCode
	loc.Address = r.Address
	loc.City = r.City
	loc.Phone = r.Phone
	if r.Active != nil {
		loc.Active = *r.Active
	}
	return loc
}

// UpdateLocationRequest is the request body for updating a location.
type UpdateLocationRequest struct {
	Code       string                `json:"code"`
	Name       string                `json:"name" binding:"required"`
	Type       location.LocationType `json:"type" binding:"required"`
	PrefixCode string                `json:"prefixCode"`
	Address    *string               `json:"address,omitempty"`
	City       *string               `json:"city,omitempty"`
	Phone      *string               `json:"phone,omitempty"`
	Active     bool                  `json:"active"`
	Version    int                   `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateLocationRequest) ApplyTo(loc *location.Location) {
	loc.Code = r.Code
	loc.Name = r.Name
	loc.Type = r.Type
	loc.PrefixCode = r.PrefixCode
	loc.Address = r.Address
	loc.City = r.City
	loc.Phone = r.Phone
	loc.Active = r.Active
	loc.Version = r.Version
}
