package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (street, number, district, city, state, zip_code, customer_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode, a.CustomerID).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	query := `SELECT id, street, number, district, city, state, zip_code, customer_id FROM addresses ORDER BY id`
	return r.queryAddresses(ctx, query)
}

func (r *addressRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Address, error) {
	query := `SELECT id, street, number, district, city, state, zip_code, customer_id FROM addresses WHERE customer_id = $1 ORDER BY id`
	return r.queryAddresses(ctx, query, customerID)
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	query := `UPDATE addresses SET street=$1, number=$2, district=$3, city=$4, state=$5, zip_code=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, a.Street, a.Number, a.District, a.City, a.State, a.ZipCode, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update address %d: %w", a.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update address %d: %w", a.ID, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete address %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete address %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *addressRepository) queryAddresses(ctx context.Context, query string, args ...any) ([]domain.Address, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.Number, &a.District, &a.City, &a.State, &a.ZipCode, &a.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
