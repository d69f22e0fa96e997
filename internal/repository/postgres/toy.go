package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/toyboxhq/toybox/internal/domain"
	"github.com/toyboxhq/toybox/pkg/database"
	apperrors "github.com/toyboxhq/toybox/pkg/errors"
)

const toyColumns = "id, sku, name, slug, category_id, brand_id, price, age_range, image_url, description, created_at, updated_at"

// ToyRepository implements repository.ToyRepository using PostgreSQL.
type ToyRepository struct {
	db database.DBTX
}

// NewToyRepository creates a new PostgreSQL-backed toy repository.
func NewToyRepository(db database.DBTX) *ToyRepository {
	return &ToyRepository{db: db}
}

// Create inserts a new toy into the database.
func (r *ToyRepository) Create(ctx context.Context, t *domain.Toy) error {
	query := `
		INSERT INTO toys (id, sku, name, slug, category_id, brand_id, price, age_range, image_url, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		t.ID,
		t.SKU,
		t.Name,
		t.Slug,
		t.CategoryID,
		t.BrandID,
		t.Price,
		t.AgeRange,
		t.ImageURL,
		t.Description,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("insert toy: %w", err)
	}

	return nil
}

// GetByID retrieves a toy by its ID.
func (r *ToyRepository) GetByID(ctx context.Context, id string) (*domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys WHERE id = $1", toyColumns)
	return r.scanToy(ctx, query, id)
}

// GetBySlug retrieves a toy by its slug.
func (r *ToyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys WHERE slug = $1", toyColumns)
	return r.scanToy(ctx, query, slug)
}

// GetBySKU retrieves a toy by its SKU.
func (r *ToyRepository) GetBySKU(ctx context.Context, sku string) (*domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys WHERE sku = $1", toyColumns)
	return r.scanToy(ctx, query, sku)
}

// List returns all toys ordered by id ascending.
func (r *ToyRepository) List(ctx context.Context) ([]domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys ORDER BY id ASC", toyColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list toys: %w", err)
	}
	defer rows.Close()

	return collectToys(rows)
}

// Search returns toys whose name contains q, case-insensitively.
func (r *ToyRepository) Search(ctx context.Context, q string) ([]domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys WHERE name ILIKE $1 ORDER BY id ASC", toyColumns)

	rows, err := r.db.Query(ctx, query, "%"+q+"%")
	if err != nil {
		return nil, fmt.Errorf("search toys: %w", err)
	}
	defer rows.Close()

	return collectToys(rows)
}

// ListByCategory returns all toys assigned to the given category.
func (r *ToyRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys WHERE category_id = $1 ORDER BY id ASC", toyColumns)

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list toys by category: %w", err)
	}
	defer rows.Close()

	return collectToys(rows)
}

// ListByBrand returns all toys assigned to the given brand.
func (r *ToyRepository) ListByBrand(ctx context.Context, brandID string) ([]domain.Toy, error) {
	query := fmt.Sprintf("SELECT %s FROM toys WHERE brand_id = $1 ORDER BY id ASC", toyColumns)

	rows, err := r.db.Query(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("list toys by brand: %w", err)
	}
	defer rows.Close()

	return collectToys(rows)
}

// Update overwrites an existing toy.
func (r *ToyRepository) Update(ctx context.Context, t *domain.Toy) error {
	query := `
		UPDATE toys
		SET sku = $1, name = $2, slug = $3, category_id = $4, brand_id = $5,
		    price = $6, age_range = $7, image_url = $8, description = $9, updated_at = $10
		WHERE id = $11`

	ct, err := r.db.Exec(ctx, query,
		t.SKU,
		t.Name,
		t.Slug,
		t.CategoryID,
		t.BrandID,
		t.Price,
		t.AgeRange,
		t.ImageURL,
		t.Description,
		t.UpdatedAt,
		t.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("update toy: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a toy from the database by its ID.
func (r *ToyRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM toys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete toy: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// CountByCategory returns how many toys reference the given category.
func (r *ToyRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM toys WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count toys by category: %w", err)
	}
	return count, nil
}

// CountByBrand returns how many toys reference the given brand.
func (r *ToyRepository) CountByBrand(ctx context.Context, brandID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM toys WHERE brand_id = $1`, brandID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count toys by brand: %w", err)
	}
	return count, nil
}

// scanToy executes a query expected to return a single toy row.
func (r *ToyRepository) scanToy(ctx context.Context, query string, args ...any) (*domain.Toy, error) {
	var t domain.Toy

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&t.ID,
		&t.SKU,
		&t.Name,
		&t.Slug,
		&t.CategoryID,
		&t.BrandID,
		&t.Price,
		&t.AgeRange,
		&t.ImageURL,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan toy: %w", err)
	}

	return &t, nil
}

// collectToys drains a toy row set. It never returns a nil slice so list
// responses serialize as [] rather than null.
func collectToys(rows pgx.Rows) ([]domain.Toy, error) {
	toys := []domain.Toy{}

	for rows.Next() {
		var t domain.Toy
		if err := rows.Scan(
			&t.ID,
			&t.SKU,
			&t.Name,
			&t.Slug,
			&t.CategoryID,
			&t.BrandID,
			&t.Price,
			&t.AgeRange,
			&t.ImageURL,
			&t.Description,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan toy row: %w", err)
		}
		toys = append(toys, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate toy rows: %w", err)
	}

	return toys, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
