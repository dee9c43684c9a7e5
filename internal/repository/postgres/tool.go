package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

const toolColumns = `t.id, t.name, COALESCE(t.description, ''), COALESCE(t.photo_url, ''), t.daily_rate_cents,
	       t.brand_id, t.category_id, t.admin_id, t.featured, t.created_on, b.name, c.name`

const toolJoins = `FROM tools t
	  JOIN brands b ON b.id = t.brand_id
	  JOIN categories c ON c.id = t.category_id`

func scanTool(scanner interface{ Scan(dest ...any) error }) (*domain.Tool, error) {
	t := &domain.Tool{Brand: &domain.Brand{}, Category: &domain.Category{}}
	err := scanner.Scan(&t.ID, &t.Name, &t.Description, &t.PhotoURL, &t.DailyRateCents,
		&t.BrandID, &t.CategoryID, &t.AdminID, &t.Featured, &t.CreatedOn, &t.Brand.Name, &t.Category.Name)
	if err != nil {
		return nil, err
	}
	t.Brand.ID = t.BrandID
	t.Category.ID = t.CategoryID
	return t, nil
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	t.CreatedOn = time.Now().UTC()
	query := `INSERT INTO tools (name, description, photo_url, daily_rate_cents, brand_id, category_id, admin_id, featured, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, t.Name, t.Description, t.PhotoURL, t.DailyRateCents, t.BrandID, t.CategoryID, t.AdminID, t.Featured, t.CreatedOn).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create tool: %w", err)
	}
	return nil
}

func (r *toolRepository) GetByID(ctx context.Context, id int32) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` ` + toolJoins + ` WHERE t.id = $1`
	t, err := scanTool(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to load tool %d: %w", id, err)
	}
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET name=$1, description=$2, photo_url=$3, daily_rate_cents=$4, brand_id=$5, category_id=$6 WHERE id=$7`
	result, err := r.db.ExecContext(ctx, query, t.Name, t.Description, t.PhotoURL, t.DailyRateCents, t.BrandID, t.CategoryID, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update tool %d: %w", t.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update tool %d: %w", t.ID, err)
	}
	if affected == 0 {
		return domain.ErrToolNotFound
	}
	return nil
}

func (r *toolRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tool %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tool %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrToolNotFound
	}
	return nil
}

func (r *toolRepository) List(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` ` + toolJoins + ` ORDER BY t.id DESC`
	return r.queryTools(ctx, query)
}

func (r *toolRepository) ListFeatured(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` ` + toolJoins + ` WHERE t.featured ORDER BY t.id DESC`
	return r.queryTools(ctx, query)
}

func (r *toolRepository) SearchByName(ctx context.Context, term string) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` ` + toolJoins + `
	          WHERE lower(b.name) = lower($1) OR lower(c.name) = lower($1)
	          ORDER BY t.id DESC`
	return r.queryTools(ctx, query, term)
}

func (r *toolRepository) SearchByExactPrice(ctx context.Context, priceCents int32) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` ` + toolJoins + ` WHERE t.daily_rate_cents = $1 ORDER BY t.id DESC`
	return r.queryTools(ctx, query, priceCents)
}

func (r *toolRepository) SearchByMaxPrice(ctx context.Context, priceCents int32) ([]domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` ` + toolJoins + ` WHERE t.daily_rate_cents <= $1 ORDER BY t.id DESC`
	return r.queryTools(ctx, query, priceCents)
}

func (r *toolRepository) SetFeatured(ctx context.Context, id int32, featured bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE tools SET featured = $1 WHERE id = $2`, featured, id)
	if err != nil {
		return fmt.Errorf("failed to update tool %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update tool %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrToolNotFound
	}
	return nil
}

func (r *toolRepository) queryTools(ctx context.Context, query string, args ...any) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		tools = append(tools, *t)
	}
	return tools, rows.Err()
}
