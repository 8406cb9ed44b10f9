package domain

import "context"

// SessionScheduledEvent is published when a session is accepted and persisted.
// It carries enough context for downstream consumers (notifications, analytics)
// without querying the primary database.
type SessionScheduledEvent struct {
	SessionID   string  `json:"session_id"`
	Code        string  `json:"code"`
	MovieID     string  `json:"movie_id"`
	HallID      string  `json:"hall_id"`
	CinemaID    string  `json:"cinema_id"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	Date        string  `json:"date"`
	Pricing     float64 `json:"pricing"`
	ScheduledAt string  `json:"scheduled_at"`
}

// SessionsCancelledEvent is published after a batch of sessions is deleted.
type SessionsCancelledEvent struct {
	SessionIDs  []string `json:"session_ids"`
	CancelledAt string   `json:"cancelled_at"`
}

// SessionEventPublisher pushes scheduling events to the host's message broker.
// Publishing is best-effort: the scheduler logs failures but never rolls back
// an accepted booking because a notification could not be sent.
type SessionEventPublisher interface {
	PublishSessionScheduled(ctx context.Context, event SessionScheduledEvent) error
	PublishSessionsCancelled(ctx context.Context, event SessionsCancelledEvent) error
}
