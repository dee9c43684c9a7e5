package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/service"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, customerID string, toolID int32, description, startDate, endDate string) (*domain.Reservation, error) {
	args := m.Called(ctx, customerID, toolID, description, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockBookingService) Confirm(ctx context.Context, id int32) (*service.ConfirmResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ConfirmResult), args.Error(1)
}
func (m *MockBookingService) Cancel(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingService) Get(ctx context.Context, id int32) (*domain.ReservationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetail), args.Error(1)
}
func (m *MockBookingService) List(ctx context.Context) ([]domain.ReservationDetail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ReservationDetail), args.Error(1)
}
func (m *MockBookingService) ListByCustomer(ctx context.Context, customerID string) ([]domain.ReservationDetail, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.ReservationDetail), args.Error(1)
}
func (m *MockBookingService) CheckAvailability(ctx context.Context, toolID int32, startDate, endDate string) (bool, error) {
	args := m.Called(ctx, toolID, startDate, endDate)
	return args.Bool(0), args.Error(1)
}
