package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"toolrental-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.AdminRepository
	repository.ToolRepository
	repository.BrandRepository
	repository.CategoryRepository
	repository.AddressRepository
	repository.PhoneRepository
	repository.ReservationRepository
	repository.DashboardRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CustomerRepository:    NewCustomerRepository(db),
		AdminRepository:       NewAdminRepository(db),
		ToolRepository:        NewToolRepository(db),
		BrandRepository:       NewBrandRepository(db),
		CategoryRepository:    NewCategoryRepository(db),
		AddressRepository:     NewAddressRepository(db),
		PhoneRepository:       NewPhoneRepository(db),
		ReservationRepository: NewReservationRepository(db),
		DashboardRepository:   NewDashboardRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
