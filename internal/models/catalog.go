package models

import "time"

// Catalog is a curated, ordered list of product references. ProductIDs are
// weak references: a deleted product may still be listed here, and readers
// drop dangling ids at display time.
type Catalog struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ProductIDs  []string  `json:"productIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateCatalogRequest struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description,omitempty"`
	ProductIDs  []string `json:"productIds,omitempty"`
}

type UpdateCatalogRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string   `json:"description,omitempty"`
	ProductIDs  *[]string `json:"productIds,omitempty"`
}

func (r *UpdateCatalogRequest) ApplyTo(c *Catalog) {
	if r.Name != nil {
		c.Name = *r.Name
	}

	if r.Description != nil {
		c.Description = *r.Description
	}

	if r.ProductIDs != nil {
		c.ProductIDs = *r.ProductIDs
	}
}

// CatalogView is a catalog with its product references resolved. Dangling
// ids are filtered out, so Products may be shorter than ProductIDs.
type CatalogView struct {
	Catalog
	Products []Product `json:"products"`
}
