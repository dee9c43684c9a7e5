package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/service"
)

func newBookingFixture() (*MockReservationRepo, *MockToolRepo, *MockCustomerRepo, *MockDispatcher, service.BookingService) {
	reservationRepo := new(MockReservationRepo)
	toolRepo := new(MockToolRepo)
	customerRepo := new(MockCustomerRepo)
	dispatcher := new(MockDispatcher)
	svc := service.NewBookingService(reservationRepo, toolRepo, customerRepo, dispatcher)
	return reservationRepo, toolRepo, customerRepo, dispatcher, svc
}

func testTool() *domain.Tool {
	return &domain.Tool{ID: 7, Name: "Circular Saw", DailyRateCents: 10000}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: "cust-1", Name: "Alice", Email: "alice@test.com"}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reservationRepo, toolRepo, customerRepo, _, svc := newBookingFixture()

		customerRepo.On("GetByID", ctx, "cust-1").Return(testCustomer(), nil)
		toolRepo.On("GetByID", ctx, int32(7)).Return(testTool(), nil)
		reservationRepo.On("HasOverlap", ctx, int32(7), mock.Anything, mock.Anything).Return(false, nil)
		reservationRepo.On("CreateIfAvailable", ctx, mock.AnythingOfType("*domain.Reservation")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Reservation).ID = 42
			}).Return(nil)

		reservation, err := svc.Create(ctx, "cust-1", 7, "weekend project", "2024-06-01", "2024-06-04")
		assert.NoError(t, err)
		assert.Equal(t, int32(42), reservation.ID)
		assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
		// 3 elapsed days at 10000 cents/day, snapshotted at creation
		assert.Equal(t, int32(30000), reservation.PriceCents)
	})

	t.Run("Inverted Range Never Touches Store", func(t *testing.T) {
		reservationRepo, toolRepo, customerRepo, _, svc := newBookingFixture()

		_, err := svc.Create(ctx, "cust-1", 7, "", "2024-06-04", "2024-06-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		toolRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		reservationRepo.AssertNotCalled(t, "HasOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		reservationRepo.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
	})

	t.Run("Unparseable Date Never Touches Store", func(t *testing.T) {
		reservationRepo, _, customerRepo, _, svc := newBookingFixture()

		_, err := svc.Create(ctx, "cust-1", 7, "", "garbage", "2024-06-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		customerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		reservationRepo.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Customer", func(t *testing.T) {
		_, _, customerRepo, _, svc := newBookingFixture()

		customerRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrCustomerNotFound)

		_, err := svc.Create(ctx, "ghost", 7, "", "2024-06-01", "2024-06-04")
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	})

	t.Run("Unknown Tool", func(t *testing.T) {
		_, toolRepo, customerRepo, _, svc := newBookingFixture()

		customerRepo.On("GetByID", ctx, "cust-1").Return(testCustomer(), nil)
		toolRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrToolNotFound)

		_, err := svc.Create(ctx, "cust-1", 99, "", "2024-06-01", "2024-06-04")
		assert.ErrorIs(t, err, domain.ErrToolNotFound)
	})

	t.Run("Overlap Detected Before Insert", func(t *testing.T) {
		reservationRepo, toolRepo, customerRepo, _, svc := newBookingFixture()

		customerRepo.On("GetByID", ctx, "cust-1").Return(testCustomer(), nil)
		toolRepo.On("GetByID", ctx, int32(7)).Return(testTool(), nil)
		reservationRepo.On("HasOverlap", ctx, int32(7), mock.Anything, mock.Anything).Return(true, nil)

		_, err := svc.Create(ctx, "cust-1", 7, "", "2024-06-01", "2024-06-04")
		assert.ErrorIs(t, err, domain.ErrReservationConflict)
		reservationRepo.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
	})

	t.Run("Conflict Surfaced By Transactional Insert", func(t *testing.T) {
		reservationRepo, toolRepo, customerRepo, _, svc := newBookingFixture()

		customerRepo.On("GetByID", ctx, "cust-1").Return(testCustomer(), nil)
		toolRepo.On("GetByID", ctx, int32(7)).Return(testTool(), nil)
		reservationRepo.On("HasOverlap", ctx, int32(7), mock.Anything, mock.Anything).Return(false, nil)
		reservationRepo.On("CreateIfAvailable", ctx, mock.AnythingOfType("*domain.Reservation")).
			Return(domain.ErrReservationConflict)

		_, err := svc.Create(ctx, "cust-1", 7, "", "2024-06-01", "2024-06-04")
		assert.ErrorIs(t, err, domain.ErrReservationConflict)
	})

	t.Run("Same Day Reservation Bills One Day", func(t *testing.T) {
		reservationRepo, toolRepo, customerRepo, _, svc := newBookingFixture()

		customerRepo.On("GetByID", ctx, "cust-1").Return(testCustomer(), nil)
		toolRepo.On("GetByID", ctx, int32(7)).Return(testTool(), nil)
		reservationRepo.On("HasOverlap", ctx, int32(7), mock.Anything, mock.Anything).Return(false, nil)
		reservationRepo.On("CreateIfAvailable", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		reservation, err := svc.Create(ctx, "cust-1", 7, "", "2024-06-01", "2024-06-01")
		assert.NoError(t, err)
		assert.Equal(t, int32(10000), reservation.PriceCents)
	})
}

func testDetail(status domain.ReservationStatus) *domain.ReservationDetail {
	return &domain.ReservationDetail{
		Reservation: domain.Reservation{
			ID:         42,
			CustomerID: "cust-1",
			ToolID:     7,
			StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			PriceCents: 30000,
			Status:     status,
		},
		CustomerName:  "Alice",
		CustomerEmail: "alice@test.com",
		ToolName:      "Circular Saw",
		BrandName:     "Makita",
		CategoryName:  "Saws",
	}
}

func TestBookingService_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirms Then Dispatches", func(t *testing.T) {
		reservationRepo, _, _, dispatcher, svc := newBookingFixture()

		reservationRepo.On("GetDetail", ctx, int32(42)).Return(testDetail(domain.ReservationStatusPending), nil)
		reservationRepo.On("UpdateStatus", ctx, int32(42), domain.ReservationStatusConfirmed).Return(nil)
		dispatcher.On("Dispatch", mock.AnythingOfType("domain.ConfirmationEvent")).Return(nil)

		result, err := svc.Confirm(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusConfirmed, result.Reservation.Status)
		assert.NoError(t, <-result.Delivery)

		event := dispatcher.Calls[0].Arguments.Get(0).(domain.ConfirmationEvent)
		assert.Equal(t, int32(42), event.ReservationID)
		assert.Equal(t, "alice@test.com", event.CustomerEmail)
		assert.Equal(t, int32(30000), event.PriceCents)
	})

	t.Run("Delivery Failure Leaves Reservation Confirmed", func(t *testing.T) {
		reservationRepo, _, _, dispatcher, svc := newBookingFixture()

		reservationRepo.On("GetDetail", ctx, int32(42)).Return(testDetail(domain.ReservationStatusPending), nil)
		reservationRepo.On("UpdateStatus", ctx, int32(42), domain.ReservationStatusConfirmed).Return(nil)
		dispatcher.On("Dispatch", mock.AnythingOfType("domain.ConfirmationEvent")).Return(errors.New("smtp down"))

		result, err := svc.Confirm(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReservationStatusConfirmed, result.Reservation.Status)

		deliveryErr := <-result.Delivery
		assert.Error(t, deliveryErr)
		// No status rollback on delivery failure
		reservationRepo.AssertNumberOfCalls(t, "UpdateStatus", 1)
	})

	t.Run("Unknown Reservation", func(t *testing.T) {
		reservationRepo, _, _, dispatcher, svc := newBookingFixture()

		reservationRepo.On("GetDetail", ctx, int32(99)).Return(nil, domain.ErrReservationNotFound)

		_, err := svc.Confirm(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	})

	t.Run("Status Update Failure Skips Dispatch", func(t *testing.T) {
		reservationRepo, _, _, dispatcher, svc := newBookingFixture()

		reservationRepo.On("GetDetail", ctx, int32(42)).Return(testDetail(domain.ReservationStatusPending), nil)
		reservationRepo.On("UpdateStatus", ctx, int32(42), domain.ReservationStatusConfirmed).
			Return(errors.New("storage failure"))

		_, err := svc.Confirm(ctx, 42)
		assert.Error(t, err)
		dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reservationRepo, _, _, _, svc := newBookingFixture()
		reservationRepo.On("Delete", ctx, int32(42)).Return(nil)

		assert.NoError(t, svc.Cancel(ctx, 42))
	})

	t.Run("Unknown Reservation", func(t *testing.T) {
		reservationRepo, _, _, _, svc := newBookingFixture()
		reservationRepo.On("Delete", ctx, int32(99)).Return(domain.ErrReservationNotFound)

		assert.ErrorIs(t, svc.Cancel(ctx, 99), domain.ErrReservationNotFound)
	})
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Available", func(t *testing.T) {
		reservationRepo, toolRepo, _, _, svc := newBookingFixture()

		toolRepo.On("GetByID", ctx, int32(7)).Return(testTool(), nil)
		reservationRepo.On("HasOverlap", ctx, int32(7), mock.Anything, mock.Anything).Return(false, nil)

		available, err := svc.CheckAvailability(ctx, 7, "2024-06-01", "2024-06-04")
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("Booked", func(t *testing.T) {
		reservationRepo, toolRepo, _, _, svc := newBookingFixture()

		toolRepo.On("GetByID", ctx, int32(7)).Return(testTool(), nil)
		reservationRepo.On("HasOverlap", ctx, int32(7), mock.Anything, mock.Anything).Return(true, nil)

		available, err := svc.CheckAvailability(ctx, 7, "2024-06-01", "2024-06-04")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("Invalid Range", func(t *testing.T) {
		_, toolRepo, _, _, svc := newBookingFixture()

		_, err := svc.CheckAvailability(ctx, 7, "2024-06-04", "2024-06-01")
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		toolRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
