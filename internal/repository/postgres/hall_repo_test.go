package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"cinephoria/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestHallRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hall := &domain.Hall{
		ID:             "hall-uuid-1",
		HallNumber:     3,
		Type:           "standard",
		Capacity:       120,
		DisabledPlaces: 6,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	mock.ExpectQuery(`INSERT INTO halls`).
		WithArgs(hall.ID, hall.HallNumber, hall.Type, hall.Capacity, hall.DisabledPlaces, hall.CreatedAt, hall.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"identifier"}).AddRow("HALL-0003"))

	repo := NewHallRepository(db)
	require.NoError(t, repo.Create(ctx, hall))
	require.Equal(t, "HALL-0003", hall.Identifier)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHallRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "identifier", "hall_number", "type", "capacity", "disabled_places", "created_at", "updated_at"}).
			AddRow("hall-uuid-1", "HALL-0003", 3, "standard", 120, 6, ts, ts)
		mock.ExpectQuery(`SELECT (.+) FROM halls WHERE id`).
			WithArgs("hall-uuid-1").
			WillReturnRows(rows)

		repo := NewHallRepository(db)
		hall, err := repo.GetByID(ctx, "hall-uuid-1")
		require.NoError(t, err)
		require.Equal(t, "HALL-0003", hall.Identifier)
		require.Equal(t, 120, hall.Capacity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM halls WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewHallRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestHallRepository_Update(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	hall := &domain.Hall{ID: "hall-uuid-1", HallNumber: 3, Type: "imax", Capacity: 150, DisabledPlaces: 8, UpdatedAt: ts}
	mock.ExpectQuery(`UPDATE halls`).
		WithArgs(hall.ID, hall.HallNumber, hall.Type, hall.Capacity, hall.DisabledPlaces, hall.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"identifier", "created_at"}).AddRow("HALL-0003", ts))

	repo := NewHallRepository(db)
	require.NoError(t, repo.Update(ctx, hall))
	require.Equal(t, "HALL-0003", hall.Identifier)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHallRepository_DeleteMany(t *testing.T) {
	ctx := context.Background()

	t.Run("success commits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM halls WHERE id = ANY`).
			WithArgs(pq.Array([]string{"h1", "h2"})).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		repo := NewHallRepository(db)
		require.NoError(t, repo.DeleteMany(ctx, []string{"h1", "h2"}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM halls WHERE id = ANY`).
			WithArgs(pq.Array([]string{"h1", "missing"})).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectRollback()

		repo := NewHallRepository(db)
		err = repo.DeleteMany(ctx, []string{"h1", "missing"})
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("referencing sessions block deletion", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM halls WHERE id = ANY`).
			WillReturnError(&pq.Error{Code: pqForeignKeyViolation})
		mock.ExpectRollback()

		repo := NewHallRepository(db)
		err = repo.DeleteMany(ctx, []string{"h1"})
		require.ErrorIs(t, err, domain.ErrResourceInUse)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
