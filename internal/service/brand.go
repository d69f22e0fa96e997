package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/toyboxhq/toybox/internal/domain"
	"github.com/toyboxhq/toybox/internal/repository"
	apperrors "github.com/toyboxhq/toybox/pkg/errors"
	"github.com/toyboxhq/toybox/pkg/slug"
)

// BrandService implements the business logic for brand operations.
type BrandService struct {
	brands repository.BrandRepository
	toys   repository.ToyRepository
	logger *slog.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(brands repository.BrandRepository, toys repository.ToyRepository, logger *slog.Logger) *BrandService {
	return &BrandService{
		brands: brands,
		toys:   toys,
		logger: logger,
	}
}

// BrandInput holds the field set for creating or replacing a brand.
type BrandInput struct {
	Name    string
	LogoURL *string
}

// UpdateBrandInput holds a partial brand update.
type UpdateBrandInput struct {
	Name    *string
	LogoURL *string
}

// ListBrands returns all brands.
func (s *BrandService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch brands", err)
	}
	return brands, nil
}

// GetBrandBySlug returns a brand together with the toys assigned to it.
func (s *BrandService) GetBrandBySlug(ctx context.Context, slugParam string) (*domain.BrandToys, error) {
	brand, err := s.brands.GetBySlug(ctx, slugParam)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeBrandNotFound, "brand not found")
		}
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch brand", err)
	}

	toys, err := s.toys.ListByBrand(ctx, brand.ID)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch brand toys", err)
	}

	return &domain.BrandToys{Brand: *brand, Toys: toys}, nil
}

// CreateBrand persists a new brand after a slug uniqueness check.
func (s *BrandService) CreateBrand(ctx context.Context, input *BrandInput) (*domain.Brand, error) {
	brand := &domain.Brand{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		LogoURL:   input.LogoURL,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: nil,
	}

	if err := s.checkSlugUnique(ctx, brand.Slug, brand.ID, apperrors.CodeBrandAddError); err != nil {
		return nil, err
	}

	if err := s.brands.Create(ctx, brand); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict(apperrors.CodeBrandExists, "a brand with this slug already exists")
		}
		return nil, apperrors.Store(apperrors.CodeBrandAddError, "failed to add brand", err)
	}

	s.logger.InfoContext(ctx, "brand created",
		slog.String("brand_id", brand.ID),
		slog.String("slug", brand.Slug),
	)

	return brand, nil
}

// UpdateBrand applies a partial update; a name change recomputes the slug.
func (s *BrandService) UpdateBrand(ctx context.Context, id string, input *UpdateBrandInput) (*domain.Brand, error) {
	brand, err := s.brands.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeBrandNotFound, "brand not found")
		}
		return nil, apperrors.Store(apperrors.CodeUpdateError, "failed to fetch brand", err)
	}

	if input.Name != nil {
		brand.Name = *input.Name
		brand.Slug = slug.Generate(*input.Name)
	}
	if input.LogoURL != nil {
		brand.LogoURL = input.LogoURL
	}

	now := time.Now().UTC()
	brand.UpdatedAt = &now

	if err := s.brands.Update(ctx, brand); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict(apperrors.CodeBrandExists, "a brand with this slug already exists")
		}
		return nil, apperrors.Store(apperrors.CodeUpdateError, "failed to update brand", err)
	}

	return brand, nil
}

// ReplaceBrand implements PUT upsert semantics for brands.
func (s *BrandService) ReplaceBrand(ctx context.Context, id string, input *BrandInput) (*domain.Brand, bool, error) {
	existing, err := s.brands.GetByID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to fetch brand", err)
	}

	brand := &domain.Brand{
		ID:      id,
		Name:    input.Name,
		Slug:    slug.Generate(input.Name),
		LogoURL: input.LogoURL,
	}

	if existing == nil {
		brand.CreatedAt = time.Now().UTC()

		if err := s.checkSlugUnique(ctx, brand.Slug, brand.ID, apperrors.CodeReplaceError); err != nil {
			return nil, false, err
		}

		if err := s.brands.Create(ctx, brand); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				return nil, false, apperrors.Conflict(apperrors.CodeBrandExists, "a brand with this slug already exists")
			}
			return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to replace brand", err)
		}

		return brand, true, nil
	}

	brand.CreatedAt = existing.CreatedAt
	now := time.Now().UTC()
	brand.UpdatedAt = &now

	if err := s.brands.Update(ctx, brand); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, false, apperrors.Conflict(apperrors.CodeBrandExists, "a brand with this slug already exists")
		}
		return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to replace brand", err)
	}

	return brand, false, nil
}

// DeleteBrand removes a brand unless toys still reference it.
func (s *BrandService) DeleteBrand(ctx context.Context, id string) (*domain.DeleteConfirmation, error) {
	if _, err := s.brands.GetByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeBrandNotFound, "brand not found")
		}
		return nil, apperrors.Store(apperrors.CodeBrandDeleteError, "failed to fetch brand", err)
	}

	count, err := s.toys.CountByBrand(ctx, id)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeBrandDeleteError, "failed to check brand usage", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict(apperrors.CodeBrandInUse, "brand still has toys assigned")
	}

	if err := s.brands.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeBrandNotFound, "brand not found")
		}
		return nil, apperrors.Store(apperrors.CodeBrandDeleteError, "failed to delete brand", err)
	}

	return &domain.DeleteConfirmation{ID: id, Deleted: true}, nil
}

func (s *BrandService) checkSlugUnique(ctx context.Context, brandSlug, id, storeCode string) error {
	if existing, err := s.brands.GetBySlug(ctx, brandSlug); err == nil && existing.ID != id {
		return apperrors.Conflict(apperrors.CodeBrandExists, "a brand with this slug already exists")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Store(storeCode, "failed to check brand uniqueness", err)
	}
	return nil
}
