package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/service"
)

func newToolFixture() (*MockToolRepo, *MockBrandRepo, *MockCategoryRepo, service.ToolService) {
	toolRepo := new(MockToolRepo)
	brandRepo := new(MockBrandRepo)
	categoryRepo := new(MockCategoryRepo)
	svc := service.NewToolService(toolRepo, brandRepo, categoryRepo)
	return toolRepo, brandRepo, categoryRepo, svc
}

func TestToolService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		toolRepo, brandRepo, categoryRepo, svc := newToolFixture()

		brandRepo.On("GetByID", ctx, int32(1)).Return(&domain.Brand{ID: 1, Name: "Makita"}, nil)
		categoryRepo.On("GetByID", ctx, int32(2)).Return(&domain.Category{ID: 2, Name: "Saws"}, nil)
		toolRepo.On("Create", ctx, mock.AnythingOfType("*domain.Tool")).Return(nil)

		err := svc.Create(ctx, &domain.Tool{Name: "Circular Saw", BrandID: 1, CategoryID: 2, DailyRateCents: 10000})
		assert.NoError(t, err)
	})

	t.Run("Unknown Brand", func(t *testing.T) {
		toolRepo, brandRepo, _, svc := newToolFixture()

		brandRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrNotFound)

		err := svc.Create(ctx, &domain.Tool{Name: "Saw", BrandID: 9, CategoryID: 2})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		toolRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestToolService_Search(t *testing.T) {
	ctx := context.Background()
	saws := []domain.Tool{{ID: 1, Name: "Circular Saw"}}

	t.Run("Empty Term Lists All", func(t *testing.T) {
		toolRepo, _, _, svc := newToolFixture()
		toolRepo.On("List", ctx).Return(saws, nil)

		tools, err := svc.Search(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, tools, 1)
	})

	t.Run("Small Number Is Exact Price", func(t *testing.T) {
		toolRepo, _, _, svc := newToolFixture()
		toolRepo.On("SearchByExactPrice", ctx, int32(10000)).Return(saws, nil)

		_, err := svc.Search(ctx, "100")
		assert.NoError(t, err)
		toolRepo.AssertCalled(t, "SearchByExactPrice", ctx, int32(10000))
	})

	t.Run("Boundary Number Is Exact Price", func(t *testing.T) {
		toolRepo, _, _, svc := newToolFixture()
		toolRepo.On("SearchByExactPrice", ctx, int32(50000)).Return(saws, nil)

		_, err := svc.Search(ctx, "500")
		assert.NoError(t, err)
		toolRepo.AssertCalled(t, "SearchByExactPrice", ctx, int32(50000))
	})

	t.Run("Large Number Is Price Ceiling", func(t *testing.T) {
		toolRepo, _, _, svc := newToolFixture()
		toolRepo.On("SearchByMaxPrice", ctx, int32(60000)).Return(saws, nil)

		_, err := svc.Search(ctx, "600")
		assert.NoError(t, err)
		toolRepo.AssertCalled(t, "SearchByMaxPrice", ctx, int32(60000))
	})

	t.Run("Text Matches Names", func(t *testing.T) {
		toolRepo, _, _, svc := newToolFixture()
		toolRepo.On("SearchByName", ctx, "makita").Return(saws, nil)

		_, err := svc.Search(ctx, "makita")
		assert.NoError(t, err)
		toolRepo.AssertCalled(t, "SearchByName", ctx, "makita")
	})
}
