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

// CategoryService implements the business logic for category operations.
type CategoryService struct {
	categories repository.CategoryRepository
	toys       repository.ToyRepository
	logger     *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(categories repository.CategoryRepository, toys repository.ToyRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		toys:       toys,
		logger:     logger,
	}
}

// CategoryInput holds the field set for creating or replacing a category.
type CategoryInput struct {
	Name string
}

// UpdateCategoryInput holds a partial category update.
type UpdateCategoryInput struct {
	Name *string
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch categories", err)
	}
	return categories, nil
}

// GetCategoryBySlug returns a category together with the toys assigned to it.
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slugParam string) (*domain.CategoryToys, error) {
	category, err := s.categories.GetBySlug(ctx, slugParam)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeCategoryNotFound, "category not found")
		}
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch category", err)
	}

	toys, err := s.toys.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch category toys", err)
	}

	return &domain.CategoryToys{Category: *category, Toys: toys}, nil
}

// CreateCategory persists a new category after a slug uniqueness check.
func (s *CategoryService) CreateCategory(ctx context.Context, input *CategoryInput) (*domain.Category, error) {
	category := &domain.Category{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Slug:      slug.Generate(input.Name),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: nil,
	}

	if err := s.checkSlugUnique(ctx, category.Slug, category.ID, apperrors.CodeCategoryAddError); err != nil {
		return nil, err
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict(apperrors.CodeCategoryExists, "a category with this slug already exists")
		}
		return nil, apperrors.Store(apperrors.CodeCategoryAddError, "failed to add category", err)
	}

	s.logger.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID),
		slog.String("slug", category.Slug),
	)

	return category, nil
}

// UpdateCategory applies a partial update; a name change recomputes the slug.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input *UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeCategoryNotFound, "category not found")
		}
		return nil, apperrors.Store(apperrors.CodeUpdateError, "failed to fetch category", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
		category.Slug = slug.Generate(*input.Name)
	}

	now := time.Now().UTC()
	category.UpdatedAt = &now

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict(apperrors.CodeCategoryExists, "a category with this slug already exists")
		}
		return nil, apperrors.Store(apperrors.CodeUpdateError, "failed to update category", err)
	}

	return category, nil
}

// ReplaceCategory implements PUT upsert semantics for categories.
func (s *CategoryService) ReplaceCategory(ctx context.Context, id string, input *CategoryInput) (*domain.Category, bool, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to fetch category", err)
	}

	category := &domain.Category{
		ID:   id,
		Name: input.Name,
		Slug: slug.Generate(input.Name),
	}

	if existing == nil {
		category.CreatedAt = time.Now().UTC()

		if err := s.checkSlugUnique(ctx, category.Slug, category.ID, apperrors.CodeReplaceError); err != nil {
			return nil, false, err
		}

		if err := s.categories.Create(ctx, category); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				return nil, false, apperrors.Conflict(apperrors.CodeCategoryExists, "a category with this slug already exists")
			}
			return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to replace category", err)
		}

		return category, true, nil
	}

	category.CreatedAt = existing.CreatedAt
	now := time.Now().UTC()
	category.UpdatedAt = &now

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, false, apperrors.Conflict(apperrors.CodeCategoryExists, "a category with this slug already exists")
		}
		return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to replace category", err)
	}

	return category, false, nil
}

// DeleteCategory removes a category unless toys still reference it.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) (*domain.DeleteConfirmation, error) {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeCategoryNotFound, "category not found")
		}
		return nil, apperrors.Store(apperrors.CodeCategoryDeleteError, "failed to fetch category", err)
	}

	count, err := s.toys.CountByCategory(ctx, id)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeCategoryDeleteError, "failed to check category usage", err)
	}
	if count > 0 {
		return nil, apperrors.Conflict(apperrors.CodeCategoryInUse, "category still has toys assigned")
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeCategoryNotFound, "category not found")
		}
		return nil, apperrors.Store(apperrors.CodeCategoryDeleteError, "failed to delete category", err)
	}

	return &domain.DeleteConfirmation{ID: id, Deleted: true}, nil
}

func (s *CategoryService) checkSlugUnique(ctx context.Context, categorySlug, id, storeCode string) error {
	if existing, err := s.categories.GetBySlug(ctx, categorySlug); err == nil && existing.ID != id {
		return apperrors.Conflict(apperrors.CodeCategoryExists, "a category with this slug already exists")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Store(storeCode, "failed to check category uniqueness", err)
	}
	return nil
}
