package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository"
)

// Inclusive three-way interval intersection: left overlap, right overlap, or
// the candidate range enclosing an existing one. Touching endpoints conflict.
const overlapPredicate = `(start_date <= $2 AND end_date >= $2)
	   OR (start_date <= $3 AND end_date >= $3)
	   OR ($2 <= start_date AND $3 >= end_date)`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// CreateIfAvailable serializes concurrent creates per tool by locking the
// tool row for the duration of the transaction, then re-evaluating the
// overlap predicate before inserting. A conflict found here, or a
// serialization failure raised by the store, surfaces as
// domain.ErrReservationConflict rather than a generic storage error.
func (r *reservationRepository) CreateIfAvailable(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}
	defer tx.Rollback()

	var toolID int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM tools WHERE id = $1 FOR UPDATE`, res.ToolID).Scan(&toolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrToolNotFound
		}
		return classifyTxError(err)
	}

	var conflicts int
	query := `SELECT count(*) FROM reservations
	          WHERE tool_id = $1 AND status IN ('PENDING', 'CONFIRMED')
	            AND (` + overlapPredicate + `)`
	err = tx.QueryRowContext(ctx, query, res.ToolID, res.StartDate, res.EndDate).Scan(&conflicts)
	if err != nil {
		return classifyTxError(err)
	}
	if conflicts > 0 {
		return domain.ErrReservationConflict
	}

	insert := `INSERT INTO reservations (customer_id, tool_id, description, start_date, end_date, price_cents, status, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	res.CreatedOn = time.Now().UTC()
	err = tx.QueryRowContext(ctx, insert, res.CustomerID, res.ToolID, res.Description, res.StartDate, res.EndDate, res.PriceCents, res.Status, res.CreatedOn).Scan(&res.ID)
	if err != nil {
		return classifyTxError(err)
	}

	if err := tx.Commit(); err != nil {
		return classifyTxError(err)
	}
	return nil
}

// classifyTxError maps store-level serialization conflicts onto the same
// conflict error the predicate check produces, so callers cannot tell "lost
// the race" from "validated wrong".
func classifyTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return domain.ErrReservationConflict
	}
	return fmt.Errorf("reservation storage failure: %w", err)
}

func (r *reservationRepository) HasOverlap(ctx context.Context, toolID int32, start, end time.Time) (bool, error) {
	var count int
	query := `SELECT count(*) FROM reservations
	          WHERE tool_id = $1 AND status IN ('PENDING', 'CONFIRMED')
	            AND (` + overlapPredicate + `)`
	if err := r.db.QueryRowContext(ctx, query, toolID, start, end).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	return count > 0, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT id, customer_id, tool_id, description, start_date, end_date, price_cents, status, created_on
	          FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.CustomerID, &res.ToolID, &res.Description, &res.StartDate, &res.EndDate, &res.PriceCents, &res.Status, &res.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return res, nil
}

const detailColumns = `r.id, r.customer_id, r.tool_id, r.description, r.start_date, r.end_date, r.price_cents, r.status, r.created_on,
	       c.name, c.email, t.name, b.name, cat.name`

const detailJoins = `FROM reservations r
	  JOIN customers c ON c.id = r.customer_id
	  JOIN tools t ON t.id = r.tool_id
	  JOIN brands b ON b.id = t.brand_id
	  JOIN categories cat ON cat.id = t.category_id`

func scanDetail(scanner interface{ Scan(dest ...any) error }) (*domain.ReservationDetail, error) {
	d := &domain.ReservationDetail{}
	err := scanner.Scan(&d.ID, &d.CustomerID, &d.ToolID, &d.Description, &d.StartDate, &d.EndDate, &d.PriceCents, &d.Status, &d.CreatedOn,
		&d.CustomerName, &d.CustomerEmail, &d.ToolName, &d.BrandName, &d.CategoryName)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *reservationRepository) GetDetail(ctx context.Context, id int32) (*domain.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + ` ` + detailJoins + ` WHERE r.id = $1`
	d, err := scanDetail(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}
	return d, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update reservation %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update reservation %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete reservation %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + ` ` + detailJoins + ` ORDER BY r.created_on DESC`
	return r.queryDetails(ctx, query)
}

func (r *reservationRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + ` ` + detailJoins + ` WHERE r.customer_id = $1 ORDER BY r.created_on DESC`
	return r.queryDetails(ctx, query, customerID)
}

// ListPendingOlderThan feeds the reminder job: pending reservations created
// before the cutoff whose owners have not confirmed yet.
func (r *reservationRepository) ListPendingOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ReservationDetail, error) {
	query := `SELECT ` + detailColumns + ` ` + detailJoins + ` WHERE r.status = 'PENDING' AND r.created_on < $1 ORDER BY r.created_on`
	return r.queryDetails(ctx, query, cutoff)
}

func (r *reservationRepository) queryDetails(ctx context.Context, query string, args ...any) ([]domain.ReservationDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var details []domain.ReservationDetail
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		details = append(details, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return details, nil
}
