package domain

import (
	"time"
)

// Category groups toys; slug is derived from name and unique among categories.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// CategoryToys is the detail response for a category: the grouping plus the
// toys currently assigned to it.
type CategoryToys struct {
	Category
	Toys []Toy `json:"toys"`
}
