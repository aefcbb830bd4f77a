// Package location provides the Location catalog.
// A location is an outlet or kitchen of the chain. Every stock movement and
// every document number is scoped to a location.
package location

import (
	"context"
	"strings"

	"bakehouse/internal/core/apperror"
	"bakehouse/internal/core/entity"
	"bakehouse/internal/core/sequence"
)

// LocationType defines what kind of site this is.
type LocationType string

const (
	TypeOutlet  LocationType = "outlet"  // retail counter
	TypeKitchen LocationType = "kitchen" // production kitchen
	TypeDepot   LocationType = "depot"   // central store
)

// Location represents an outlet, kitchen, or depot.
type Location struct {
	entity.Catalog

	// Type defines site category
	Type LocationType `db:"type" json:"type"`

	// PrefixCode is the configured document number prefix.
	// When empty, a prefix is derived from the name.
	PrefixCode string `db:"prefix_code" json:"prefixCode"`

	// Address is the street address
	Address *string `db:"address" json:"address,omitempty"`

	// City the location operates in
	City *string `db:"city" json:"city,omitempty"`

	// Phone is a contact number
	Phone *string `db:"phone" json:"phone,omitempty"`

	// Active indicates the location is operational
	Active bool `db:"active" json:"active"`
}

// NewLocation creates a new Location with required fields.
func NewLocation(code, name string, locType LocationType) *Location {
	return &Location{
		Catalog: entity.NewCatalog(code, name),
		Type:    locType,
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (l *Location) Validate(ctx context.Context) error {
	if err := l.Catalog.Validate(ctx); err != nil {
		return err
	}

	if !isValidLocationType(l.Type) {
		return apperror.NewValidation("invalid location type").
			WithDetail("field", "type").
			WithDetail("value", string(l.Type))
	}

	if len(l.PrefixCode) > sequence.MaxPrefixLen {
		return apperror.NewValidation("prefix code too long").
			WithDetail("field", "prefixCode").
			WithDetail("maxLength", sequence.MaxPrefixLen)
	}

	return nil
}

// SequencePrefix returns the document number prefix for this location.
// The configured prefix code wins; otherwise one is derived from the name.
func (l *Location) SequencePrefix() string {
	if p := strings.TrimSpace(l.PrefixCode); p != "" {
		return strings.ToUpper(p)
	}
	return sequence.PrefixFromName(l.Name)
}

func isValidLocationType(t LocationType) bool {
	switch t {
	case TypeOutlet, TypeKitchen, TypeDepot:
		return true
	}
	return false
}
