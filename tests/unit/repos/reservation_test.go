package repos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"toolrental-backend/internal/domain"
	"toolrental-backend/internal/repository/postgres"
)

func date(s string) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return d
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		CustomerID:  "cust-1",
		ToolID:      7,
		Description: "weekend project",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-04"),
		PriceCents:  30000,
		Status:      domain.ReservationStatusPending,
	}
}

func TestReservationRepository_CreateIfAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)
		res := pendingReservation()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM tools WHERE id = \\$1 FOR UPDATE").
			WithArgs(res.ToolID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations").
			WithArgs(res.ToolID, res.StartDate, res.EndDate).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(res.CustomerID, res.ToolID, res.Description, res.StartDate, res.EndDate, res.PriceCents, res.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		err = repo.CreateIfAvailable(ctx, res)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), res.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Overlap Under Lock Rolls Back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)
		res := pendingReservation()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM tools WHERE id = \\$1 FOR UPDATE").
			WithArgs(res.ToolID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations").
			WithArgs(res.ToolID, res.StartDate, res.EndDate).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err = repo.CreateIfAvailable(ctx, res)
		assert.ErrorIs(t, err, domain.ErrReservationConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Tool", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)
		res := pendingReservation()
		res.ToolID = 99

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM tools WHERE id = \\$1 FOR UPDATE").
			WithArgs(res.ToolID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err = repo.CreateIfAvailable(ctx, res)
		assert.ErrorIs(t, err, domain.ErrToolNotFound)
	})

	t.Run("Serialization Failure Reads As Conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)
		res := pendingReservation()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM tools WHERE id = \\$1 FOR UPDATE").
			WithArgs(res.ToolID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations").
			WithArgs(res.ToolID, res.StartDate, res.EndDate).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "40001"})
		mock.ExpectRollback()

		err = repo.CreateIfAvailable(ctx, res)
		assert.ErrorIs(t, err, domain.ErrReservationConflict)
	})

	t.Run("Other Storage Errors Stay Storage Errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)
		res := pendingReservation()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM tools WHERE id = \\$1 FOR UPDATE").
			WithArgs(res.ToolID).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err = repo.CreateIfAvailable(ctx, res)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrReservationConflict)
	})
}

func TestReservationRepository_HasOverlap(t *testing.T) {
	ctx := context.Background()

	t.Run("Overlap Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations").
			WithArgs(int32(7), date("2024-06-01"), date("2024-06-04")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		overlap, err := repo.HasOverlap(ctx, 7, date("2024-06-01"), date("2024-06-04"))
		assert.NoError(t, err)
		assert.True(t, overlap)
	})

	t.Run("No Overlap", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)

		mock.ExpectQuery("SELECT count\\(\\*\\) FROM reservations").
			WithArgs(int32(7), date("2024-06-10"), date("2024-06-12")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		overlap, err := repo.HasOverlap(ctx, 7, date("2024-06-10"), date("2024-06-12"))
		assert.NoError(t, err)
		assert.False(t, overlap)
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)

		mock.ExpectExec("UPDATE reservations SET status = \\$1 WHERE id = \\$2").
			WithArgs(domain.ReservationStatusConfirmed, int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.UpdateStatus(ctx, 42, domain.ReservationStatusConfirmed)
		assert.NoError(t, err)
	})

	t.Run("Missing Row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)

		mock.ExpectExec("UPDATE reservations SET status = \\$1 WHERE id = \\$2").
			WithArgs(domain.ReservationStatusConfirmed, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStatus(ctx, 99, domain.ReservationStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	})
}

func TestReservationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)

		mock.ExpectExec("DELETE FROM reservations WHERE id = \\$1").
			WithArgs(int32(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 42))
	})

	t.Run("Missing Row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReservationRepository(db)

		mock.ExpectExec("DELETE FROM reservations WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrReservationNotFound)
	})
}

func TestReservationRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := postgres.NewReservationRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "tool_id", "description", "start_date", "end_date", "price_cents", "status", "created_on",
		"name", "email", "name", "name", "name",
	}).AddRow(43, "cust-2", 8, "deck repair", date("2024-06-10"), date("2024-06-12"), 20000, "CONFIRMED", date("2024-06-02"),
		"Bob", "bob@test.com", "Nail Gun", "DeWalt", "Nailers").
		AddRow(42, "cust-1", 7, "weekend project", date("2024-06-01"), date("2024-06-04"), 30000, "PENDING", date("2024-06-01"),
			"Alice", "alice@test.com", "Circular Saw", "Makita", "Saws")

	mock.ExpectQuery("SELECT (.+) FROM reservations r (.+) ORDER BY r.created_on DESC").
		WillReturnRows(rows)

	details, err := repo.List(ctx)
	assert.NoError(t, err)
	if assert.Len(t, details, 2) {
		assert.Equal(t, int32(43), details[0].ID)
		assert.Equal(t, "Bob", details[0].CustomerName)
		assert.Equal(t, "DeWalt", details[0].BrandName)
		assert.Equal(t, domain.ReservationStatusConfirmed, details[0].Status)
		assert.Equal(t, int32(42), details[1].ID)
		assert.Equal(t, "Saws", details[1].CategoryName)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepository_GetDetail(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := postgres.NewReservationRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "tool_id", "description", "start_date", "end_date", "price_cents", "status", "created_on",
		"name", "email", "name", "name", "name",
	}).AddRow(42, "cust-1", 7, "weekend project", date("2024-06-01"), date("2024-06-04"), 30000, "PENDING", time.Now(),
		"Alice", "alice@test.com", "Circular Saw", "Makita", "Saws")

	mock.ExpectQuery("SELECT (.+) FROM reservations r").
		WithArgs(int32(42)).
		WillReturnRows(rows)

	detail, err := repo.GetDetail(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", detail.CustomerName)
	assert.Equal(t, "Circular Saw", detail.ToolName)
	assert.Equal(t, int32(30000), detail.PriceCents)
}
