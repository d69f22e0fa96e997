package domain

import (
	"time"
)

// Brand identifies a toy manufacturer; slug is derived from name and unique
// among brands.
type Brand struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	LogoURL   *string    `json:"logo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// BrandToys is the detail response for a brand: the brand plus the toys
// currently assigned to it.
type BrandToys struct {
	Brand
	Toys []Toy `json:"toys"`
}
