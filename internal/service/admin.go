package service

import (
	"context"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type adminService struct {
	adminRepo repository.AdminRepository
}

func NewAdminService(adminRepo repository.AdminRepository) AdminService {
	return &adminService{adminRepo: adminRepo}
}

func (s *adminService) Get(ctx context.Context, id string) (*domain.Admin, error) {
	return s.adminRepo.GetByID(ctx, id)
}

func (s *adminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.adminRepo.List(ctx)
}

func (s *adminService) Update(ctx context.Context, admin *domain.Admin) error {
	// Callers update profile fields only; keep the stored hash unless one
	// was explicitly provided.
	if admin.PasswordHash == "" {
		existing, err := s.adminRepo.GetByID(ctx, admin.ID)
		if err != nil {
			return err
		}
		admin.PasswordHash = existing.PasswordHash
	}
	return s.adminRepo.Update(ctx, admin)
}

func (s *adminService) Delete(ctx context.Context, id string) error {
	return s.adminRepo.Delete(ctx, id)
}
