package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toyboxhq/toybox/internal/domain"
	"github.com/toyboxhq/toybox/internal/event"
	"github.com/toyboxhq/toybox/internal/repository"
	apperrors "github.com/toyboxhq/toybox/pkg/errors"
	"github.com/toyboxhq/toybox/pkg/slug"
)

// ToyService implements the business logic for toy operations. Every write
// follows the same pipeline: validate the payload, resolve referenced
// category/brand, check uniqueness, persist, then shape the response with
// its relations.
type ToyService struct {
	toys       repository.ToyRepository
	categories repository.CategoryRepository
	brands     repository.BrandRepository
	producer   *event.Producer
	logger     *slog.Logger
}

// NewToyService creates a new toy service.
func NewToyService(
	toys repository.ToyRepository,
	categories repository.CategoryRepository,
	brands repository.BrandRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ToyService {
	return &ToyService{
		toys:       toys,
		categories: categories,
		brands:     brands,
		producer:   producer,
		logger:     logger,
	}
}

// CreateToyInput holds the parameters for creating a toy.
type CreateToyInput struct {
	SKU         string
	Name        string
	CategoryID  *string
	BrandID     *string
	Price       *int64
	AgeRange    *string
	ImageURL    *string
	Description *string
}

// UpdateToyInput holds the parameters for a partial toy update. Nil fields
// are left untouched.
type UpdateToyInput struct {
	SKU         *string
	Name        *string
	CategoryID  *string
	BrandID     *string
	Price       *int64
	AgeRange    *string
	ImageURL    *string
	Description *string
}

// ReplaceToyInput holds the full field set for a PUT replace.
type ReplaceToyInput struct {
	SKU         string
	Name        string
	CategoryID  *string
	BrandID     *string
	Price       *int64
	AgeRange    *string
	ImageURL    *string
	Description *string
}

// ListToys returns all toys, each shaped with its category and brand.
func (s *ToyService) ListToys(ctx context.Context) ([]domain.ToyDetail, error) {
	toys, err := s.toys.List(ctx)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch toys", err)
	}
	return s.shapeToys(ctx, toys), nil
}

// SearchToys returns toys whose name contains q, case-insensitively. An empty
// query is rejected; an empty result set is not an error.
func (s *ToyService) SearchToys(ctx context.Context, q string) ([]domain.ToyDetail, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperrors.InvalidQuery("search query is required")
	}

	toys, err := s.toys.Search(ctx, q)
	if err != nil {
		return nil, apperrors.Store(apperrors.CodeSearchError, "failed to search toys", err)
	}
	return s.shapeToys(ctx, toys), nil
}

// GetToyBySlug returns a single toy shaped with its relations.
func (s *ToyService) GetToyBySlug(ctx context.Context, slugParam string) (*domain.ToyDetail, error) {
	toy, err := s.toys.GetBySlug(ctx, slugParam)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeToyNotFound, "toy not found")
		}
		return nil, apperrors.Store(apperrors.CodeGetError, "failed to fetch toy", err)
	}
	return s.shapeToy(ctx, toy), nil
}

// CreateToy validates relations and uniqueness, then persists a new toy.
func (s *ToyService) CreateToy(ctx context.Context, input *CreateToyInput) (*domain.ToyDetail, error) {
	if err := s.resolveRelations(ctx, input.CategoryID, input.BrandID, apperrors.CodeAddError); err != nil {
		return nil, err
	}

	toy := &domain.Toy{
		ID:          uuid.New().String(),
		SKU:         input.SKU,
		Name:        input.Name,
		Slug:        slug.Generate(input.Name),
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		Price:       priceOrDefault(input.Price),
		AgeRange:    input.AgeRange,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   nil,
	}

	if err := s.checkToyUnique(ctx, toy, apperrors.CodeAddError); err != nil {
		return nil, err
	}

	if err := s.toys.Create(ctx, toy); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict(apperrors.CodeToyExists, "a toy with this sku or slug already exists")
		}
		return nil, apperrors.Store(apperrors.CodeAddError, "failed to add toy", err)
	}

	s.publish(ctx, s.producer.PublishToyCreated, toy, event.TopicToyCreated)

	s.logger.InfoContext(ctx, "toy created",
		slog.String("toy_id", toy.ID),
		slog.String("slug", toy.Slug),
	)

	return s.shapeToy(ctx, toy), nil
}

// UpdateToy applies a partial update: only fields present in the input are
// changed. A name change recomputes the slug.
func (s *ToyService) UpdateToy(ctx context.Context, id string, input *UpdateToyInput) (*domain.ToyDetail, error) {
	toy, err := s.toys.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeToyNotFound, "toy not found")
		}
		return nil, apperrors.Store(apperrors.CodeUpdateError, "failed to fetch toy", err)
	}

	if input.CategoryID != nil || input.BrandID != nil {
		if err := s.resolveRelations(ctx, input.CategoryID, input.BrandID, apperrors.CodeUpdateError); err != nil {
			return nil, err
		}
	}

	if input.SKU != nil {
		toy.SKU = *input.SKU
	}
	if input.Name != nil {
		toy.Name = *input.Name
		toy.Slug = slug.Generate(*input.Name)
	}
	if input.CategoryID != nil {
		toy.CategoryID = input.CategoryID
	}
	if input.BrandID != nil {
		toy.BrandID = input.BrandID
	}
	if input.Price != nil {
		toy.Price = *input.Price
	}
	if input.AgeRange != nil {
		toy.AgeRange = input.AgeRange
	}
	if input.ImageURL != nil {
		toy.ImageURL = input.ImageURL
	}
	if input.Description != nil {
		toy.Description = input.Description
	}

	now := time.Now().UTC()
	toy.UpdatedAt = &now

	if err := s.toys.Update(ctx, toy); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, apperrors.Conflict(apperrors.CodeToyExists, "a toy with this sku or slug already exists")
		}
		return nil, apperrors.Store(apperrors.CodeUpdateError, "failed to update toy", err)
	}

	s.publish(ctx, s.producer.PublishToyUpdated, toy, event.TopicToyUpdated)

	return s.shapeToy(ctx, toy), nil
}

// ReplaceToy implements PUT upsert semantics: an unknown id creates a toy
// under that id, an existing one is overwritten in full with created_at
// preserved. The returned bool reports whether a new record was created.
func (s *ToyService) ReplaceToy(ctx context.Context, id string, input *ReplaceToyInput) (*domain.ToyDetail, bool, error) {
	if err := s.resolveRelations(ctx, input.CategoryID, input.BrandID, apperrors.CodeReplaceError); err != nil {
		return nil, false, err
	}

	existing, err := s.toys.GetByID(ctx, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to fetch toy", err)
	}

	toy := &domain.Toy{
		ID:          id,
		SKU:         input.SKU,
		Name:        input.Name,
		Slug:        slug.Generate(input.Name),
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		Price:       priceOrDefault(input.Price),
		AgeRange:    input.AgeRange,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}

	if existing == nil {
		toy.CreatedAt = time.Now().UTC()

		if err := s.checkToyUnique(ctx, toy, apperrors.CodeReplaceError); err != nil {
			return nil, false, err
		}

		if err := s.toys.Create(ctx, toy); err != nil {
			if errors.Is(err, apperrors.ErrAlreadyExists) {
				return nil, false, apperrors.Conflict(apperrors.CodeToyExists, "a toy with this sku or slug already exists")
			}
			return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to replace toy", err)
		}

		s.publish(ctx, s.producer.PublishToyCreated, toy, event.TopicToyCreated)

		return s.shapeToy(ctx, toy), true, nil
	}

	toy.CreatedAt = existing.CreatedAt
	now := time.Now().UTC()
	toy.UpdatedAt = &now

	if err := s.toys.Update(ctx, toy); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return nil, false, apperrors.Conflict(apperrors.CodeToyExists, "a toy with this sku or slug already exists")
		}
		return nil, false, apperrors.Store(apperrors.CodeReplaceError, "failed to replace toy", err)
	}

	s.publish(ctx, s.producer.PublishToyUpdated, toy, event.TopicToyUpdated)

	return s.shapeToy(ctx, toy), false, nil
}

// DeleteToy removes a toy and returns a delete confirmation.
func (s *ToyService) DeleteToy(ctx context.Context, id string) (*domain.DeleteConfirmation, error) {
	if _, err := s.toys.GetByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeToyNotFound, "toy not found")
		}
		return nil, apperrors.Store(apperrors.CodeDeleteError, "failed to fetch toy", err)
	}

	if err := s.toys.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeToyNotFound, "toy not found")
		}
		return nil, apperrors.Store(apperrors.CodeDeleteError, "failed to delete toy", err)
	}

	if err := s.producer.PublishToyDeleted(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish toy.deleted event",
			slog.String("toy_id", id),
			slog.String("error", err.Error()),
		)
	}

	return &domain.DeleteConfirmation{ID: id, Deleted: true}, nil
}

// resolveRelations verifies referenced category and brand exist. A missing
// reference surfaces as the resource's 404, not the operation's 500.
func (s *ToyService) resolveRelations(ctx context.Context, categoryID, brandID *string, storeCode string) error {
	if categoryID != nil {
		if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NotFound(apperrors.CodeCategoryNotFound, "category not found")
			}
			return apperrors.Store(storeCode, "failed to resolve category", err)
		}
	}
	if brandID != nil {
		if _, err := s.brands.GetByID(ctx, *brandID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NotFound(apperrors.CodeBrandNotFound, "brand not found")
			}
			return apperrors.Store(storeCode, "failed to resolve brand", err)
		}
	}
	return nil
}

// checkToyUnique is the advisory pre-check for slug and sku collisions; the
// database unique constraints remain the authoritative guard.
func (s *ToyService) checkToyUnique(ctx context.Context, toy *domain.Toy, storeCode string) error {
	if existing, err := s.toys.GetBySlug(ctx, toy.Slug); err == nil && existing.ID != toy.ID {
		return apperrors.Conflict(apperrors.CodeToyExists, "a toy with this sku or slug already exists")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Store(storeCode, "failed to check toy uniqueness", err)
	}

	if existing, err := s.toys.GetBySKU(ctx, toy.SKU); err == nil && existing.ID != toy.ID {
		return apperrors.Conflict(apperrors.CodeToyExists, "a toy with this sku or slug already exists")
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Store(storeCode, "failed to check toy uniqueness", err)
	}

	return nil
}

// shapeToy projects a toy into its response shape with resolved relations.
// Relation lookup failures degrade to the bare toy rather than failing the
// request.
func (s *ToyService) shapeToy(ctx context.Context, toy *domain.Toy) *domain.ToyDetail {
	detail := &domain.ToyDetail{Toy: *toy}

	if toy.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *toy.CategoryID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load toy category",
				slog.String("toy_id", toy.ID),
				slog.String("category_id", *toy.CategoryID),
				slog.String("error", err.Error()),
			)
		} else {
			detail.Category = category
		}
	}

	if toy.BrandID != nil {
		brand, err := s.brands.GetByID(ctx, *toy.BrandID)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load toy brand",
				slog.String("toy_id", toy.ID),
				slog.String("brand_id", *toy.BrandID),
				slog.String("error", err.Error()),
			)
		} else {
			detail.Brand = brand
		}
	}

	return detail
}

func (s *ToyService) shapeToys(ctx context.Context, toys []domain.Toy) []domain.ToyDetail {
	details := make([]domain.ToyDetail, len(toys))
	for i := range toys {
		details[i] = *s.shapeToy(ctx, &toys[i])
	}
	return details
}

// publish sends a domain event, logging failures instead of failing the
// request.
func (s *ToyService) publish(ctx context.Context, fn func(context.Context, *domain.Toy) error, toy *domain.Toy, topic string) {
	if err := fn(ctx, toy); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", topic),
			slog.String("toy_id", toy.ID),
			slog.String("error", err.Error()),
		)
	}
}

func priceOrDefault(p *int64) int64 {
	if p == nil {
		return domain.DefaultPrice
	}
	return *p
}
