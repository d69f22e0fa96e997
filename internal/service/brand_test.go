package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/toyboxhq/toybox/internal/domain"
	apperrors "github.com/toyboxhq/toybox/pkg/errors"
)

func newBrandService(brands *mockBrandRepo, toys *mockToyRepo) *BrandService {
	return NewBrandService(brands, toys, testLogger())
}

func TestCreateBrand_AssignsIDAndSlug(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := newBrandService(brands, new(mockToyRepo))

	brands.On("GetBySlug", mock.Anything, "brick-works").Return(nil, apperrors.ErrNotFound)
	brands.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
		return b.LogoURL != nil && *b.LogoURL == "https://example.com/logo.png"
	})).Return(nil)

	brand, err := svc.CreateBrand(context.Background(), &BrandInput{
		Name:    "Brick Works",
		LogoURL: strPtr("https://example.com/logo.png"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, brand.ID)
	assert.Equal(t, "brick-works", brand.Slug)
	assert.Nil(t, brand.UpdatedAt)
}

func TestCreateBrand_DuplicateSlug(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := newBrandService(brands, new(mockToyRepo))

	brands.On("GetBySlug", mock.Anything, "toyco").Return(sampleBrand(), nil)

	_, err := svc.CreateBrand(context.Background(), &BrandInput{Name: "ToyCo"})

	appErr := requireAppError(t, err)
	assert.Equal(t, apperrors.CodeBrandExists, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
}

func TestGetBrandBySlug_IncludesToys(t *testing.T) {
	brands := new(mockBrandRepo)
	toys := new(mockToyRepo)
	svc := newBrandService(brands, toys)

	brand := sampleBrand()
	brands.On("GetBySlug", mock.Anything, "toyco").Return(brand, nil)
	toys.On("ListByBrand", mock.Anything, brand.ID).Return([]domain.Toy{*sampleToy()}, nil)

	result, err := svc.GetBrandBySlug(context.Background(), "toyco")

	require.NoError(t, err)
	assert.Equal(t, "toyco", result.Slug)
	require.Len(t, result.Toys, 1)
}

func TestGetBrandBySlug_NotFound(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := newBrandService(brands, new(mockToyRepo))

	brands.On("GetBySlug", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetBrandBySlug(context.Background(), "ghost")

	appErr := requireAppError(t, err)
	assert.Equal(t, apperrors.CodeBrandNotFound, appErr.Code)
}

func TestUpdateBrand_NameChangeRecomputesSlug(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := newBrandService(brands, new(mockToyRepo))

	brand := sampleBrand()
	brands.On("GetByID", mock.Anything, brand.ID).Return(brand, nil)
	brands.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdateBrand(context.Background(), brand.ID, &UpdateBrandInput{
		Name: strPtr("Mega Blocks"),
	})

	require.NoError(t, err)
	assert.Equal(t, "mega-blocks", updated.Slug)
	require.NotNil(t, updated.UpdatedAt)
}

func TestReplaceBrand_CreatesUnderUnknownID(t *testing.T) {
	brands := new(mockBrandRepo)
	svc := newBrandService(brands, new(mockToyRepo))

	const id = "550e8400-e29b-41d4-a716-446655440077"
	brands.On("GetByID", mock.Anything, id).Return(nil, apperrors.ErrNotFound)
	brands.On("GetBySlug", mock.Anything, "plush-co").Return(nil, apperrors.ErrNotFound)
	brands.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
		return b.ID == id
	})).Return(nil)

	brand, created, err := svc.ReplaceBrand(context.Background(), id, &BrandInput{Name: "Plush Co"})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, id, brand.ID)
}

func TestDeleteBrand_InUse(t *testing.T) {
	brands := new(mockBrandRepo)
	toys := new(mockToyRepo)
	svc := newBrandService(brands, toys)

	brand := sampleBrand()
	brands.On("GetByID", mock.Anything, brand.ID).Return(brand, nil)
	toys.On("CountByBrand", mock.Anything, brand.ID).Return(2, nil)

	_, err := svc.DeleteBrand(context.Background(), brand.ID)

	appErr := requireAppError(t, err)
	assert.Equal(t, apperrors.CodeBrandInUse, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	brands.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBrand_Unreferenced(t *testing.T) {
	brands := new(mockBrandRepo)
	toys := new(mockToyRepo)
	svc := newBrandService(brands, toys)

	brand := sampleBrand()
	brands.On("GetByID", mock.Anything, brand.ID).Return(brand, nil)
	toys.On("CountByBrand", mock.Anything, brand.ID).Return(0, nil)
	brands.On("Delete", mock.Anything, brand.ID).Return(nil)

	confirmation, err := svc.DeleteBrand(context.Background(), brand.ID)

	require.NoError(t, err)
	assert.True(t, confirmation.Deleted)
}
