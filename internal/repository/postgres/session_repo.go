package postgres

import (
	"context"
	"database/sql"

	"cinephoria/internal/domain"

	"github.com/lib/pq"
)

// pq error codes translated into domain errors.
const (
	pqExclusionViolation  = "23P01"
	pqForeignKeyViolation = "23503"
)

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &SessionRepository{
		DB: db,
	}
}

const sessionColumns = `id, code, movie_id, hall_id, cinema_id, session_start, session_end, date, pricing, note, created_at, updated_at`

// Create inserts the session and assigns its sequential code in the same
// statement, so code assignment is atomic with the write. The gist exclusion
// constraint on (hall_id, session window) is the authoritative overlap guard;
// a violation means a concurrent booking won the race.
func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO cine_sessions (id, code, movie_id, hall_id, cinema_id, session_start, session_end, date, pricing, note, created_at, updated_at)
		VALUES ($1, 'CINE_SESSION-' || lpad(nextval('cine_session_codes')::text, 4, '0'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING code
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ID, s.MovieID, s.HallID, s.CinemaID, s.SessionStart, s.SessionEnd, s.Date, s.Pricing, s.Note, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.Code)
	if err != nil {
		return translateSessionWriteError(err)
	}
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `
		UPDATE cine_sessions
		SET movie_id = $2, hall_id = $3, cinema_id = $4, session_start = $5, session_end = $6, date = $7, pricing = $8, note = $9, updated_at = $10
		WHERE id = $1
		RETURNING code, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		s.ID, s.MovieID, s.HallID, s.CinemaID, s.SessionStart, s.SessionEnd, s.Date, s.Pricing, s.Note, s.UpdatedAt,
	).Scan(&s.Code, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
		return translateSessionWriteError(err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM cine_sessions WHERE id = $1`
	s := &domain.Session{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Code, &s.MovieID, &s.HallID, &s.CinemaID, &s.SessionStart, &s.SessionEnd, &s.Date, &s.Pricing, &s.Note, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *SessionRepository) ListByHall(ctx context.Context, hallID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM cine_sessions
		WHERE hall_id = $1
		ORDER BY session_start
	`
	rows, err := r.DB.QueryContext(ctx, query, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SessionRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Session, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM cine_sessions`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + sessionColumns + `
		FROM cine_sessions
		ORDER BY session_start, hall_id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, 0, err
	}
	return sessions, total, nil
}

func (r *SessionRepository) DeleteMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM cine_sessions WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
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

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		s := &domain.Session{}
		if err := rows.Scan(&s.ID, &s.Code, &s.MovieID, &s.HallID, &s.CinemaID, &s.SessionStart, &s.SessionEnd, &s.Date, &s.Pricing, &s.Note, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func translateSessionWriteError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case pqExclusionViolation:
			return domain.ErrSessionOverlap
		case pqForeignKeyViolation:
			return domain.ErrNotFound
		}
	}
	return err
}
