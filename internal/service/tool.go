package service

import (
	"context"
	"strconv"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/repository"
)

// Numeric search terms up to this value (in whole currency units) are treated
// as an exact daily rate; anything above becomes a price ceiling.
const exactPriceSearchLimit = 500

type toolService struct {
	toolRepo     repository.ToolRepository
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
}

func NewToolService(
	toolRepo repository.ToolRepository,
	brandRepo repository.BrandRepository,
	categoryRepo repository.CategoryRepository,
) ToolService {
	return &toolService{
		toolRepo:     toolRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *toolService) Create(ctx context.Context, tool *domain.Tool) error {
	if _, err := s.brandRepo.GetByID(ctx, tool.BrandID); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, tool.CategoryID); err != nil {
		return err
	}
	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return err
	}
	logger.Info("tool created", "tool_id", tool.ID, "name", tool.Name)
	return nil
}

func (s *toolService) Get(ctx context.Context, id int32) (*domain.Tool, error) {
	return s.toolRepo.GetByID(ctx, id)
}

func (s *toolService) Update(ctx context.Context, tool *domain.Tool) error {
	return s.toolRepo.Update(ctx, tool)
}

func (s *toolService) Delete(ctx context.Context, id int32) error {
	return s.toolRepo.Delete(ctx, id)
}

func (s *toolService) List(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolService) ListFeatured(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.ListFeatured(ctx)
}

// Search dispatches on the shape of the term: a number is a daily-rate query
// (exact match up to the limit, ceiling above it), anything else matches
// brand or category names. An empty term lists everything.
func (s *toolService) Search(ctx context.Context, term string) ([]domain.Tool, error) {
	if term == "" {
		return s.toolRepo.List(ctx)
	}

	if amount, err := strconv.ParseInt(term, 10, 32); err == nil && amount >= 0 {
		cents := int32(amount) * 100
		if amount <= exactPriceSearchLimit {
			return s.toolRepo.SearchByExactPrice(ctx, cents)
		}
		return s.toolRepo.SearchByMaxPrice(ctx, cents)
	}

	return s.toolRepo.SearchByName(ctx, term)
}

func (s *toolService) SetFeatured(ctx context.Context, id int32, featured bool) error {
	return s.toolRepo.SetFeatured(ctx, id, featured)
}
