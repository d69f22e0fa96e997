package repository

import (
	"context"

	"github.com/toyboxhq/toybox/internal/domain"
)

// ToyRepository defines the interface for toy persistence operations.
type ToyRepository interface {
	// Create inserts a new toy into the store.
	Create(ctx context.Context, toy *domain.Toy) error

	// GetByID retrieves a toy by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Toy, error)

	// GetBySlug retrieves a toy by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Toy, error)

	// GetBySKU retrieves a toy by its stock-keeping unit.
	GetBySKU(ctx context.Context, sku string) (*domain.Toy, error)

	// List returns all toys ordered by id ascending.
	List(ctx context.Context) ([]domain.Toy, error)

	// Search returns toys whose name contains q, case-insensitively.
	Search(ctx context.Context, q string) ([]domain.Toy, error)

	// ListByCategory returns all toys assigned to the given category.
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Toy, error)

	// ListByBrand returns all toys assigned to the given brand.
	ListByBrand(ctx context.Context, brandID string) ([]domain.Toy, error)

	// Update overwrites an existing toy.
	Update(ctx context.Context, toy *domain.Toy) error

	// Delete removes a toy from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// CountByCategory returns how many toys reference the given category.
	CountByCategory(ctx context.Context, categoryID string) (int, error)

	// CountByBrand returns how many toys reference the given brand.
	CountByBrand(ctx context.Context, brandID string) (int, error)
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// BrandRepository defines the interface for brand persistence operations.
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id string) error
}
