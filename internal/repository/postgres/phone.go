package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type phoneRepository struct {
	db *sql.DB
}

func NewPhoneRepository(db *sql.DB) repository.PhoneRepository {
	return &phoneRepository{db: db}
}

func (r *phoneRepository) Create(ctx context.Context, p *domain.Phone) error {
	query := `INSERT INTO phones (number, alt_number, customer_id) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.Number, p.AltNumber, p.CustomerID).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create phone: %w", err)
	}
	return nil
}

func (r *phoneRepository) List(ctx context.Context) ([]domain.Phone, error) {
	return r.queryPhones(ctx, `SELECT id, number, alt_number, customer_id FROM phones ORDER BY id`)
}

func (r *phoneRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Phone, error) {
	return r.queryPhones(ctx, `SELECT id, number, alt_number, customer_id FROM phones WHERE customer_id = $1 ORDER BY id`, customerID)
}

func (r *phoneRepository) Update(ctx context.Context, p *domain.Phone) error {
	result, err := r.db.ExecContext(ctx, `UPDATE phones SET number=$1, alt_number=$2 WHERE id=$3`, p.Number, p.AltNumber, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update phone %d: %w", p.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update phone %d: %w", p.ID, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *phoneRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM phones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete phone %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete phone %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *phoneRepository) queryPhones(ctx context.Context, query string, args ...any) ([]domain.Phone, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	defer rows.Close()

	var phones []domain.Phone
	for rows.Next() {
		var p domain.Phone
		if err := rows.Scan(&p.ID, &p.Number, &p.AltNumber, &p.CustomerID); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones = append(phones, p)
	}
	return phones, rows.Err()
}
