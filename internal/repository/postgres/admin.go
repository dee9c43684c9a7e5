package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedOn = now
	a.UpdatedOn = now
	query := `INSERT INTO admins (id, name, email, password_hash, level, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Email, a.PasswordHash, a.Level, a.CreatedOn, a.UpdatedOn)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, name, email, password_hash, level, created_on, updated_on FROM admins WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Level, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin %s: %w", id, err)
	}
	return a, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT id, name, email, password_hash, level, created_on, updated_on FROM admins WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Level, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to load admin by email: %w", err)
	}
	return a, nil
}

func (r *adminRepository) Update(ctx context.Context, a *domain.Admin) error {
	a.UpdatedOn = time.Now().UTC()
	query := `UPDATE admins SET name=$1, email=$2, password_hash=$3, level=$4, updated_on=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, a.Name, a.Email, a.PasswordHash, a.Level, a.UpdatedOn, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update admin %s: %w", a.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update admin %s: %w", a.ID, err)
	}
	if affected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete admin %s: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *adminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	query := `SELECT id, name, email, password_hash, level, created_on, updated_on FROM admins ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Level, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}
