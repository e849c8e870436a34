package models

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

type CreateProductRequest struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category" validate:"required"`
	InStock     *bool   `json:"inStock,omitempty"`
}

// Pointer fields so an omitted field is distinguishable from a zero value:
// only non-nil fields are applied to the stored record.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Image       *string  `json:"image,omitempty"`
	Category    *string  `json:"category,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// ApplyTo merges the patch over p, field by field. Nil fields leave the
// target untouched.
func (r *UpdateProductRequest) ApplyTo(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}

	if r.Description != nil {
		p.Description = *r.Description
	}

	if r.Price != nil {
		p.Price = *r.Price
	}

	if r.Image != nil {
		p.Image = *r.Image
	}

	if r.Category != nil {
		p.Category = *r.Category
	}

	if r.InStock != nil {
		p.InStock = *r.InStock
	}
}
