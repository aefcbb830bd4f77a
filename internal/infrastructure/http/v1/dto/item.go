package dto

import (
	"bakehouse/internal/core/types"
	"bakehouse/internal/domain/catalogs/item"
)

// CreateItemRequest is the request body for creating an item.
type CreateItemRequest struct {
	Code         string        `json:"code"`
	Name         string        `json:"name" binding:"required"`
	Kind         item.ItemKind `json:"kind" binding:"required"`
	Unit         item.Unit     `json:"unit" binding:"required"`
	TaxPercent   types.Money   `json:"taxPercent"`
	StandardCost types.Money   `json:"standardCost"`
	Description  *string       `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateItemRequest) ToEntity() *item.Item {
	it := item.NewItem(r.Code, r.Name, r.Kind, r.Unit)
	it.TaxPercent = r.TaxPercent
	it.StandardCost = r.StandardCost
	it.Description = r.Description
	return it
}

// UpdateItemRequest is the request body for updating an item.
type UpdateItemRequest struct {
	Code         string        `json:"code"`
	Name         string        `json:"name" binding:"required"`
	Kind         item.ItemKind `json:"kind" binding:"required"`
	Unit         item.Unit     `json:"unit" binding:"required"`
	TaxPercent   types.Money   `json:"taxPercent"`
	StandardCost types.Money   `json:"standardCost"`
	Description  *string       `json:"description,omitempty"`
	Version      int           `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateItemRequest) ApplyTo(it *item.Item) {
	it.Code = r.Code
	it.Name = r.Name
	it.Kind = r.Kind
	it.Unit = r.Unit
	it.TaxPercent = r.TaxPercent
	it.StandardCost = r.StandardCost
	it.Description = r.Description
	it.Version = r.Version
}
