package service

import (
	"context"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type addressService struct {
	addressRepo  repository.AddressRepository
	customerRepo repository.CustomerRepository
}

func NewAddressService(addressRepo repository.AddressRepository, customerRepo repository.CustomerRepository) AddressService {
	return &addressService{addressRepo: addressRepo, customerRepo: customerRepo}
}

func (s *addressService) Create(ctx context.Context, address *domain.Address) error {
	if _, err := s.customerRepo.GetByID(ctx, address.CustomerID); err != nil {
		return err
	}
	return s.addressRepo.Create(ctx, address)
}

func (s *addressService) List(ctx context.Context) ([]domain.Address, error) {
	return s.addressRepo.List(ctx)
}

func (s *addressService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Address, error) {
	return s.addressRepo.ListByCustomer(ctx, customerID)
}

func (s *addressService) Update(ctx context.Context, address *domain.Address) error {
	return s.addressRepo.Update(ctx, address)
}

func (s *addressService) Delete(ctx context.Context, id int32) error {
	return s.addressRepo.Delete(ctx, id)
}

type phoneService struct {
	phoneRepo    repository.PhoneRepository
	customerRepo repository.CustomerRepository
}

func NewPhoneService(phoneRepo repository.PhoneRepository, customerRepo repository.CustomerRepository) PhoneService {
	return &phoneService{phoneRepo: phoneRepo, customerRepo: customerRepo}
}

func (s *phoneService) Create(ctx context.Context, phone *domain.Phone) error {
	if _, err := s.customerRepo.GetByID(ctx, phone.CustomerID); err != nil {
		return err
	}
	return s.phoneRepo.Create(ctx, phone)
}

func (s *phoneService) List(ctx context.Context) ([]domain.Phone, error) {
	return s.phoneRepo.List(ctx)
}

func (s *phoneService) ListByCustomer(ctx context.Context, customerID string) ([]domain.Phone, error) {
	return s.phoneRepo.ListByCustomer(ctx, customerID)
}

func (s *phoneService) Update(ctx context.Context, phone *domain.Phone) error {
	return s.phoneRepo.Update(ctx, phone)
}

func (s *phoneService) Delete(ctx context.Context, id int32) error {
	return s.phoneRepo.Delete(ctx, id)
}
