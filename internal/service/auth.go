package service

import (
	"context"
	"fmt"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/repository"
	"toolrental-backend/internal/security"
)

type authService struct {
	customerRepo repository.CustomerRepository
	adminRepo    repository.AdminRepository
	tokens       security.TokenManager
	limiter      LoginLimiter
}

func NewAuthService(
	customerRepo repository.CustomerRepository,
	adminRepo repository.AdminRepository,
	tokens security.TokenManager,
	limiter LoginLimiter,
) AuthService {
	return &authService{
		customerRepo: customerRepo,
		adminRepo:    adminRepo,
		tokens:       tokens,
		limiter:      limiter,
	}
}

func (s *authService) RegisterCustomer(ctx context.Context, name, email, cpf, password string) (*domain.Customer, error) {
	if issues := security.ValidatePasswordStrength(password); len(issues) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrWeakPassword, security.JoinIssues(issues))
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := &domain.Customer{
		Name:         name,
		Email:        email,
		CPF:          cpf,
		PasswordHash: hash,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	logger.Info("customer registered", "customer_id", customer.ID, "email", email)
	return customer, nil
}

func (s *authService) LoginCustomer(ctx context.Context, email, password string) (string, *domain.Customer, error) {
	if err := s.limiter.Allow(ctx, email); err != nil {
		return "", nil, err
	}

	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		s.recordFailure(ctx, email)
		return "", nil, ErrInvalidCredentials
	}
	if !security.CheckPassword(customer.PasswordHash, password) {
		s.recordFailure(ctx, email)
		return "", nil, ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		logger.Warn("failed to reset login attempts", "email", email, "error", err)
	}

	token, err := s.tokens.GenerateCustomerToken(customer.ID, customer.Name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, customer, nil
}

func (s *authService) RegisterAdmin(ctx context.Context, name, email, password string, level domain.AdminLevel) (*domain.Admin, error) {
	if issues := security.ValidatePasswordStrength(password); len(issues) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrWeakPassword, security.JoinIssues(issues))
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Level:        level,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("admin registered", "admin_id", admin.ID, "email", email, "level", level)
	return admin, nil
}

func (s *authService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	if err := s.limiter.Allow(ctx, email); err != nil {
		return "", nil, err
	}

	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		s.recordFailure(ctx, email)
		return "", nil, ErrInvalidCredentials
	}
	if !security.CheckPassword(admin.PasswordHash, password) {
		s.recordFailure(ctx, email)
		return "", nil, ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		logger.Warn("failed to reset login attempts", "email", email, "error", err)
	}

	token, err := s.tokens.GenerateAdminToken(admin.ID, admin.Name, admin.Level)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, admin, nil
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		logger.Warn("failed to record login attempt", "email", email, "error", err)
	}
}
