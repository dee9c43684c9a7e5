package service

import (
	"context"
	"fmt"
	"time"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/logger"
	"toolrental-backend/internal/repository"
	"toolrental-backend/internal/utils"
)

type bookingService struct {
	reservationRepo repository.ReservationRepository
	toolRepo        repository.ToolRepository
	customerRepo    repository.CustomerRepository
	dispatcher      ConfirmationDispatcher
}

func NewBookingService(
	reservationRepo repository.ReservationRepository,
	toolRepo repository.ToolRepository,
	customerRepo repository.CustomerRepository,
	dispatcher ConfirmationDispatcher,
) BookingService {
	return &bookingService{
		reservationRepo: reservationRepo,
		toolRepo:        toolRepo,
		customerRepo:    customerRepo,
		dispatcher:      dispatcher,
	}
}

// parseRange validates the requested interval without touching the store.
// Any parse failure or inverted range maps onto domain.ErrInvalidDateRange.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDateRange, err)
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDateRange, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *bookingService) Create(ctx context.Context, customerID string, toolID int32, description, startDate, endDate string) (*domain.Reservation, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}

	// Cheap precheck outside the transaction. The authoritative overlap
	// check runs again under the tool row lock in CreateIfAvailable.
	overlap, err := s.reservationRepo.HasOverlap(ctx, toolID, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrReservationConflict
	}

	price, err := utils.ReservationCost(tool.DailyRateCents, start, end)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		CustomerID:  customerID,
		ToolID:      toolID,
		Description: description,
		StartDate:   start,
		EndDate:     end,
		PriceCents:  price,
		Status:      domain.ReservationStatusPending,
	}

	if err := s.reservationRepo.CreateIfAvailable(ctx, reservation); err != nil {
		return nil, err
	}

	logger.Info("reservation created",
		"reservation_id", reservation.ID,
		"tool_id", toolID,
		"customer_id", customerID,
		"start_date", startDate,
		"end_date", endDate,
		"price_cents", price)

	return reservation, nil
}

// Confirm persists the CONFIRMED status first and only then hands the event
// to the dispatcher. The returned Delivery channel reports the notification
// outcome; a failed delivery leaves the reservation confirmed.
func (s *bookingService) Confirm(ctx context.Context, id int32) (*ConfirmResult, error) {
	detail, err := s.reservationRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.ReservationStatusConfirmed); err != nil {
		return nil, err
	}
	detail.Status = domain.ReservationStatusConfirmed

	event := domain.ConfirmationEvent{
		ReservationID: detail.ID,
		CustomerName:  detail.CustomerName,
		CustomerEmail: detail.CustomerEmail,
		ToolName:      detail.ToolName,
		BrandName:     detail.BrandName,
		CategoryName:  detail.CategoryName,
		Description:   detail.Description,
		StartDate:     detail.StartDate,
		EndDate:       detail.EndDate,
		PriceCents:    detail.PriceCents,
	}

	return &ConfirmResult{
		Reservation: detail,
		Delivery:    s.dispatcher.Dispatch(event),
	}, nil
}

// Cancel removes the reservation outright, immediately freeing its dates for
// other customers. Confirmed reservations cancel the same way pending ones do.
func (s *bookingService) Cancel(ctx context.Context, id int32) error {
	return s.reservationRepo.Delete(ctx, id)
}

func (s *bookingService) Get(ctx context.Context, id int32) (*domain.ReservationDetail, error) {
	return s.reservationRepo.GetDetail(ctx, id)
}

func (s *bookingService) List(ctx context.Context) ([]domain.ReservationDetail, error) {
	return s.reservationRepo.List(ctx)
}

func (s *bookingService) ListByCustomer(ctx context.Context, customerID string) ([]domain.ReservationDetail, error) {
	return s.reservationRepo.ListByCustomer(ctx, customerID)
}

func (s *bookingService) CheckAvailability(ctx context.Context, toolID int32, startDate, endDate string) (bool, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return false, err
	}
	if _, err := s.toolRepo.GetByID(ctx, toolID); err != nil {
		return false, err
	}
	overlap, err := s.reservationRepo.HasOverlap(ctx, toolID, start, end)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}
