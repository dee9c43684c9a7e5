package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

type dashboardRepository struct {
	db *sql.DB
}

func NewDashboardRepository(db *sql.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) Totals(ctx context.Context) (*domain.DashboardTotals, error) {
	totals := &domain.DashboardTotals{}
	query := `SELECT
	            (SELECT count(*) FROM customers),
	            (SELECT count(*) FROM tools),
	            (SELECT count(*) FROM reservations)`
	err := r.db.QueryRowContext(ctx, query).Scan(&totals.Customers, &totals.Tools, &totals.Reservations)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard totals: %w", err)
	}
	return totals, nil
}

func (r *dashboardRepository) TopTools(ctx context.Context, limit int) ([]domain.NameCount, error) {
	query := `SELECT t.name, count(r.id) AS total
	          FROM reservations r
	          JOIN tools t ON t.id = r.tool_id
	          GROUP BY t.name
	          ORDER BY total DESC
	          LIMIT $1`
	return r.queryNameCounts(ctx, query, limit)
}

func (r *dashboardRepository) TopBrands(ctx context.Context, limit int) ([]domain.NameCount, error) {
	query := `SELECT b.name, count(r.id) AS total
	          FROM reservations r
	          JOIN tools t ON t.id = r.tool_id
	          JOIN brands b ON b.id = t.brand_id
	          GROUP BY b.name
	          ORDER BY total DESC
	          LIMIT $1`
	return r.queryNameCounts(ctx, query, limit)
}

func (r *dashboardRepository) ReservationsByCategory(ctx context.Context) ([]domain.NameCount, error) {
	query := `SELECT c.name, count(r.id) AS total
	          FROM reservations r
	          JOIN tools t ON t.id = r.tool_id
	          JOIN categories c ON c.id = t.category_id
	          GROUP BY c.name
	          ORDER BY total DESC`
	return r.queryNameCounts(ctx, query)
}

func (r *dashboardRepository) NewCustomersByMonth(ctx context.Context) ([]domain.MonthCount, error) {
	query := `SELECT TO_CHAR(created_on, 'Mon') AS month, EXTRACT(MONTH FROM created_on) AS month_number, count(id) AS total
	          FROM customers
	          WHERE created_on >= NOW() - INTERVAL '12 months'
	          GROUP BY month, month_number
	          ORDER BY month_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load new customers by month: %w", err)
	}
	defer rows.Close()

	var counts []domain.MonthCount
	for rows.Next() {
		var mc domain.MonthCount
		var monthNumber int
		if err := rows.Scan(&mc.Month, &monthNumber, &mc.Total); err != nil {
			return nil, fmt.Errorf("failed to scan month count: %w", err)
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}

func (r *dashboardRepository) queryNameCounts(ctx context.Context, query string, args ...any) ([]domain.NameCount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.NameCount
	for rows.Next() {
		var nc domain.NameCount
		if err := rows.Scan(&nc.Name, &nc.Total); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard count: %w", err)
		}
		counts = append(counts, nc)
	}
	return counts, rows.Err()
}
