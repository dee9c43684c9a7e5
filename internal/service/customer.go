package service

import (
	"context"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	phoneRepo    repository.PhoneRepository
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	phoneRepo repository.PhoneRepository,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
		phoneRepo:    phoneRepo,
	}
}

func (s *customerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	phones, err := s.phoneRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Addresses = addresses
	customer.Phones = phones
	return customer, nil
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("customer deleted", "customer_id", id)
	return nil
}
