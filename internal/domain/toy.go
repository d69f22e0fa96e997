package domain

import (
	"time"
)

// Toy represents a single catalog entry.
//
// Slug is always derived server-side from Name; SKU and Slug are globally
// unique among toys. Price is stored in cents and never drops below 100.
// UpdatedAt stays nil until the first successful mutation.
type Toy struct {
	ID          string     `json:"id"`
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	CategoryID  *string    `json:"category_id,omitempty"`
	BrandID     *string    `json:"brand_id,omitempty"`
	Price       int64      `json:"price"`
	AgeRange    *string    `json:"age_range,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// DefaultPrice is applied when a create or replace payload omits the price.
const DefaultPrice int64 = 100

// ToyDetail is the public response shape of a toy: the record plus its
// resolved category and brand, when set.
type ToyDetail struct {
	Toy
	Category *Category `json:"category,omitempty"`
	Brand    *Brand    `json:"brand,omitempty"`
}

// DeleteConfirmation is returned by delete endpoints.
type DeleteConfirmation struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
