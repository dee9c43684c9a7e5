package repository

import (
	"context"
	"time"

	"toolrental-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)

	// Delete removes the customer together with their phones and addresses
	// in a single transaction.
	Delete(ctx context.Context, id string) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Admin, error)
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id int32) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Tool, error)
	ListFeatured(ctx context.Context) ([]domain.Tool, error)
	SearchByName(ctx context.Context, term string) ([]domain.Tool, error)
	SearchByExactPrice(ctx context.Context, priceCents int32) ([]domain.Tool, error)
	SearchByMaxPrice(ctx context.Context, priceCents int32) ([]domain.Tool, error)
	SetFeatured(ctx context.Context, id int32, featured bool) error
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id int32) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id int32) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int32) error
}

type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	List(ctx context.Context) ([]domain.Address, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int32) error
}

type PhoneRepository interface {
	Create(ctx context.Context, phone *domain.Phone) error
	List(ctx context.Context) ([]domain.Phone, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Phone, error)
	Update(ctx context.Context, phone *domain.Phone) error
	Delete(ctx context.Context, id int32) error
}

type ReservationRepository interface {
	// CreateIfAvailable inserts the reservation inside a transaction that
	// locks the tool row and re-evaluates the overlap predicate, so two
	// concurrent creates for the same tool serialize and the loser gets
	// domain.ErrReservationConflict.
	CreateIfAvailable(ctx context.Context, reservation *domain.Reservation) error

	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	GetDetail(ctx context.Context, id int32) (*domain.ReservationDetail, error)
	HasOverlap(ctx context.Context, toolID int32, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.ReservationDetail, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.ReservationDetail, error)
	ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ReservationDetail, error)
}

type DashboardRepository interface {
	Totals(ctx context.Context) (*domain.DashboardTotals, error)
	TopTools(ctx context.Context, limit int) ([]domain.NameCount, error)
	TopBrands(ctx context.Context, limit int) ([]domain.NameCount, error)
	ReservationsByCategory(ctx context.Context) ([]domain.NameCount, error)
	NewCustomersByMonth(ctx context.Context) ([]domain.MonthCount, error)
}
