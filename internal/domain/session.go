package domain

import (
	"context"
	"time"
)

// Session is a scheduled screening of a movie in a specific hall, cinema, and
// time window. Code is the human-readable sequential identifier
// (CINE_SESSION-0001, CINE_SESSION-0002, ...), assigned atomically with the
// insert and never reused after deletion.
// swagger:model Session
type Session struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	MovieID      string    `json:"movie_id"`
	HallID       string    `json:"hall_id"`
	CinemaID     string    `json:"cinema_id"`
	SessionStart time.Time `json:"session_start"`
	SessionEnd   time.Time `json:"session_end"`
	Date         time.Time `json:"date"`
	Pricing      float64   `json:"pricing"`
	Note         float64   `json:"note"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SessionRequest is a candidate booking as received from the host's
// create/update entry points.
type SessionRequest struct {
	MovieID      string
	HallID       string
	CinemaID     string
	SessionStart time.Time
	SessionEnd   time.Time
	Date         time.Time
	Pricing      float64
	Note         float64
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Sharing a boundary instant is not an overlap, so
// back-to-back sessions are legal.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// SessionRepository defines the interface for session storage.
//
// Create and Update carry the authoritative overlap guard: the in-service
// conflict scan is a fast path only, and a write racing past it must be
// rejected at the storage boundary and surfaced as ErrSessionOverlap.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Update(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByHall(ctx context.Context, hallID string) ([]*Session, error)
	List(ctx context.Context, p PaginationParams) ([]*Session, int, error)
	// DeleteMany removes the given sessions atomically as a set. If any id does
	// not exist the whole batch fails with ErrNotFound and nothing is removed.
	DeleteMany(ctx context.Context, ids []string) error
}

// ScheduleService is the sole authority permitted to accept or reject a
// session write. Validation rejections are returned as *SchedulingError
// values; any other error is a persistence or catalog failure.
type ScheduleService interface {
	ProposeSession(ctx context.Context, req SessionRequest) (*Session, error)
	UpdateSession(ctx context.Context, sessionID string, req SessionRequest) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	ListSessions(ctx context.Context, p PaginationParams) ([]*Session, int, error)
	DeleteSessions(ctx context.Context, ids []string) error
}
