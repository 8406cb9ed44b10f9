package postgres

import (
	"context"
	"database/sql"

	"cinephoria/internal/domain"

	"github.com/lib/pq"
)

type HallRepository struct {
	DB *sql.DB
}

func NewHallRepository(db *sql.DB) domain.HallRepository {
	return &HallRepository{
		DB: db,
	}
}

func (r *HallRepository) Create(ctx context.Context, hall *domain.Hall) error {
	query := `
		INSERT INTO halls (id, identifier, hall_number, type, capacity, disabled_places, created_at, updated_at)
		VALUES ($1, 'HALL-' || lpad(nextval('hall_codes')::text, 4, '0'), $2, $3, $4, $5, $6, $7)
		RETURNING identifier
	`
	return r.DB.QueryRowContext(ctx, query,
		hall.ID, hall.HallNumber, hall.Type, hall.Capacity, hall.DisabledPlaces, hall.CreatedAt, hall.UpdatedAt,
	).Scan(&hall.Identifier)
}

func (r *HallRepository) GetByID(ctx context.Context, id string) (*domain.Hall, error) {
	query := `
		SELECT id, identifier, hall_number, type, capacity, disabled_places, created_at, updated_at
		FROM halls
		WHERE id = $1
	`
	hall := &domain.Hall{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&hall.ID, &hall.Identifier, &hall.HallNumber, &hall.Type, &hall.Capacity, &hall.DisabledPlaces, &hall.CreatedAt, &hall.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return hall, nil
}

func (r *HallRepository) List(ctx context.Context) ([]*domain.Hall, error) {
	query := `
		SELECT id, identifier, hall_number, type, capacity, disabled_places, created_at, updated_at
		FROM halls
		ORDER BY hall_number
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var halls []*domain.Hall
	for rows.Next() {
		hall := &domain.Hall{}
		if err := rows.Scan(&hall.ID, &hall.Identifier, &hall.HallNumber, &hall.Type, &hall.Capacity, &hall.DisabledPlaces, &hall.CreatedAt, &hall.UpdatedAt); err != nil {
			return nil, err
		}
		halls = append(halls, hall)
	}
	return halls, rows.Err()
}

func (r *HallRepository) Update(ctx context.Context, hall *domain.Hall) error {
	query := `
		UPDATE halls
		SET hall_number = $2, type = $3, capacity = $4, disabled_places = $5, updated_at = $6
		WHERE id = $1
		RETURNING identifier, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		hall.ID, hall.HallNumber, hall.Type, hall.Capacity, hall.DisabledPlaces, hall.UpdatedAt,
	).Scan(&hall.Identifier, &hall.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *HallRepository) DeleteMany(ctx context.Context, ids []string) error {
	return deleteManyByID(ctx, r.DB, "halls", ids)
}

// deleteManyByID removes the given rows in one transaction. A missing id makes
// the affected count disagree with the request, so the whole batch rolls back
// with ErrNotFound. A foreign-key rejection (sessions still reference a row)
// surfaces as ErrResourceInUse.
func deleteManyByID(ctx context.Context, db *sql.DB, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrResourceInUse
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected != int64(len(ids)) {
		return domain.ErrNotFound
	}
	return tx.Commit()
}
