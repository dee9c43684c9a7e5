package service

import (
	"context"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type brandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) BrandService {
	return &brandService{brandRepo: brandRepo}
}

func (s *brandService) Create(ctx context.Context, brand *domain.Brand) error {
	return s.brandRepo.Create(ctx, brand)
}

func (s *brandService) Get(ctx context.Context, id int32) (*domain.Brand, error) {
	return s.brandRepo.GetByID(ctx, id)
}

func (s *brandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.brandRepo.List(ctx)
}

func (s *brandService) Update(ctx context.Context, brand *domain.Brand) error {
	return s.brandRepo.Update(ctx, brand)
}

func (s *brandService) Delete(ctx context.Context, id int32) error {
	return s.brandRepo.Delete(ctx, id)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, category *domain.Category) error {
	return s.categoryRepo.Create(ctx, category)
}

func (s *categoryService) Get(ctx context.Context, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, category *domain.Category) error {
	return s.categoryRepo.Update(ctx, category)
}

func (s *categoryService) Delete(ctx context.Context, id int32) error {
	return s.categoryRepo.Delete(ctx, id)
}
