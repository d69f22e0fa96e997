package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/toyboxhq/toybox/internal/domain"
	"github.com/toyboxhq/toybox/internal/event"
	pkgkafka "github.com/toyboxhq/toybox/pkg/kafka"
)

// =============================================================================
// Mock ToyRepository
// =============================================================================

type mockToyRepo struct {
	mock.Mock
}

func (m *mockToyRepo) Create(ctx context.Context, toy *domain.Toy) error {
	args := m.Called(ctx, toy)
	return args.Error(0)
}

func (m *mockToyRepo) GetByID(ctx context.Context, id string) (*domain.Toy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Toy), args.Error(1)
}

func (m *mockToyRepo) GetBySlug(ctx context.Context, slug string) (*domain.Toy, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Toy), args.Error(1)
}

func (m *mockToyRepo) GetBySKU(ctx context.Context, sku string) (*domain.Toy, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Toy), args.Error(1)
}

func (m *mockToyRepo) List(ctx context.Context) ([]domain.Toy, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Toy), args.Error(1)
}

func (m *mockToyRepo) Search(ctx context.Context, q string) ([]domain.Toy, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.Toy), args.Error(1)
}

func (m *mockToyRepo) ListByCategory(ctx context.Context, categoryID string) ([]domain.Toy, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]domain.Toy), args.Error(1)
}

func (m *mockToyRepo) ListByBrand(ctx context.Context, brandID string) ([]domain.Toy, error) {
	args := m.Called(ctx, brandID)
	return args.Get(0).([]domain.Toy), args.Error(1)
}

func (m *mockToyRepo) Update(ctx context.Context, toy *domain.Toy) error {
	args := m.Called(ctx, toy)
	return args.Error(0)
}

func (m *mockToyRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockToyRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *mockToyRepo) CountByBrand(ctx context.Context, brandID string) (int, error) {
	args := m.Called(ctx, brandID)
	return args.Int(0), args.Error(1)
}

// =============================================================================
// Mock CategoryRepository
// =============================================================================

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Mock BrandRepository
// =============================================================================

type mockBrandRepo struct {
	mock.Mock
}

func (m *mockBrandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepo) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepo) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Brand), args.Error(1)
}

func (m *mockBrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Brand), args.Error(1)
}

func (m *mockBrandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockBrandRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// =============================================================================
// Test helpers
// =============================================================================

// fakePublisher records published events without touching a broker.
type fakePublisher struct {
	topics []string
	events []*pkgkafka.Event
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, e *pkgkafka.Event) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.events = append(f.events, e)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEventProducer() (*event.Producer, *fakePublisher) {
	pub := &fakePublisher{}
	return event.NewProducer(pub, testLogger()), pub
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func sampleToy() *domain.Toy {
	return &domain.Toy{
		ID:        "550e8400-e29b-41d4-a716-446655440001",
		SKU:       "TOY-001",
		Name:      "Red Car",
		Slug:      "red-car",
		Price:     150,
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func sampleCategory() *domain.Category {
	return &domain.Category{
		ID:        "550e8400-e29b-41d4-a716-446655440010",
		Name:      "Vehicles",
		Slug:      "vehicles",
		CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func sampleBrand() *domain.Brand {
	return &domain.Brand{
		ID:        "550e8400-e29b-41d4-a716-446655440020",
		Name:      "ToyCo",
		Slug:      "toyco",
		CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}
