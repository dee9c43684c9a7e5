package service

import (
	"context"
	"errors"

	"toolrental-backend/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
)

type AuthService interface {
	RegisterCustomer(ctx context.Context, name, email, cpf, password string) (*domain.Customer, error)
	LoginCustomer(ctx context.Context, email, password string) (string, *domain.Customer, error)
	RegisterAdmin(ctx context.Context, name, email, password string, level domain.AdminLevel) (*domain.Admin, error)
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error)
}

type CustomerService interface {
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)

	// Delete removes the customer and everything hanging off them
	// (addresses, phones) in one transaction.
	Delete(ctx context.Context, id string) error
}

type AdminService interface {
	Get(ctx context.Context, id string) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
}

type ToolService interface {
	Create(ctx context.Context, tool *domain.Tool) error
	Get(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Tool, error)
	ListFeatured(ctx context.Context) ([]domain.Tool, error)
	Search(ctx context.Context, term string) ([]domain.Tool, error)
	SetFeatured(ctx context.Context, id int32, featured bool) error
}

type BrandService interface {
	Create(ctx context.Context, brand *domain.Brand) error
	Get(ctx context.Context, id int32) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id int32) error
}

type CategoryService interface {
	Create(ctx context.Context, category *domain.Category) error
	Get(ctx context.Context, id int32) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int32) error
}

type AddressService interface {
	Create(ctx context.Context, address *domain.Address) error
	List(ctx context.Context) ([]domain.Address, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int32) error
}

type PhoneService interface {
	Create(ctx context.Context, phone *domain.Phone) error
	List(ctx context.Context) ([]domain.Phone, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Phone, error)
	Update(ctx context.Context, phone *domain.Phone) error
	Delete(ctx context.Context, id int32) error
}

// ConfirmResult pairs the confirmed reservation with a channel that reports
// the outcome of the asynchronous confirmation notification. The reservation
// is durably CONFIRMED before the channel ever yields; a delivery failure
// never rolls the status back.
type ConfirmResult struct {
	Reservation *domain.ReservationDetail
	Delivery    <-chan error
}

type BookingService interface {
	// Create books the tool for [startDate, endDate] (yyyy-mm-dd, both ends
	// inclusive) at the tool's current daily rate. An inverted or unparseable
	// range fails with domain.ErrInvalidDateRange before any store access;
	// an interval overlapping a pending or confirmed reservation fails with
	// domain.ErrReservationConflict.
	Create(ctx context.Context, customerID string, toolID int32, description, startDate, endDate string) (*domain.Reservation, error)

	Confirm(ctx context.Context, id int32) (*ConfirmResult, error)
	Cancel(ctx context.Context, id int32) error
	Get(ctx context.Context, id int32) (*domain.ReservationDetail, error)
	List(ctx context.Context) ([]domain.ReservationDetail, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.ReservationDetail, error)
	CheckAvailability(ctx context.Context, toolID int32, startDate, endDate string) (bool, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type DashboardSummary struct {
	Totals                 domain.DashboardTotals `json:"totals"`
	TopTools               []domain.NameCount     `json:"top_tools"`
	TopBrands              []domain.NameCount     `json:"top_brands"`
	ReservationsByCategory []domain.NameCount     `json:"reservations_by_category"`
	NewCustomersByMonth    []domain.MonthCount    `json:"new_customers_by_month"`
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, event domain.ConfirmationEvent) error
	SendPendingReservationReminder(ctx context.Context, detail domain.ReservationDetail) error
}

// ConfirmationDispatcher delivers confirmation events off the request path.
// Dispatch returns immediately; the channel carries the single delivery
// outcome and is then closed.
type ConfirmationDispatcher interface {
	Dispatch(event domain.ConfirmationEvent) <-chan error
}

// LoginLimiter throttles repeated failed logins per identifier. Satisfied by
// ratelimit.LoginLimiter.
type LoginLimiter interface {
	Allow(ctx context.Context, identifier string) error
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}
