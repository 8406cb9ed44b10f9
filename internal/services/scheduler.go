package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cinephoria/internal/domain"

	"github.com/google/uuid"
)

type scheduleService struct {
	catalog        domain.ResourceCatalog
	sessionRepo    domain.SessionRepository
	publisher      domain.SessionEventPublisher
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewScheduleService(catalog domain.ResourceCatalog, sessionRepo domain.SessionRepository, publisher domain.SessionEventPublisher, logger *slog.Logger, timeout time.Duration) domain.ScheduleService {
	return &scheduleService{
		catalog:        catalog,
		sessionRepo:    sessionRepo,
		publisher:      publisher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// ProposeSession decides whether a candidate booking may be created. Validation
// rejections come back as *domain.SchedulingError; a persistence failure after
// validation is a distinct, wrapped error. The storage exclusion constraint is
// the authoritative overlap arbiter: if it rejects a write that raced past the
// fast-path scan, the rejection is translated back into a HallConflict so the
// caller experience is uniform.
func (s *scheduleService) ProposeSession(ctx context.Context, req domain.SessionRequest) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validateCandidate(ctx, req, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &domain.Session{
		ID:           uuid.NewString(),
		MovieID:      req.MovieID,
		HallID:       req.HallID,
		CinemaID:     req.CinemaID,
		SessionStart: req.SessionStart,
		SessionEnd:   req.SessionEnd,
		Date:         req.Date,
		Pricing:      req.Pricing,
		Note:         req.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		if errors.Is(err, domain.ErrSessionOverlap) {
			return nil, domain.NewHallConflict("hall is already booked for this window", nil)
		}
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.publishScheduled(ctx, sess)
	return sess, nil
}

// UpdateSession re-runs the full conflict check as if the session were a new
// booking, excluding only its own prior instance.
func (s *scheduleService) UpdateSession(ctx context.Context, sessionID string, req domain.SessionRequest) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	if err := s.validateCandidate(ctx, req, sessionID); err != nil {
		return nil, err
	}

	sess := &domain.Session{
		ID:           existing.ID,
		Code:         existing.Code,
		MovieID:      req.MovieID,
		HallID:       req.HallID,
		CinemaID:     req.CinemaID,
		SessionStart: req.SessionStart,
		SessionEnd:   req.SessionEnd,
		Date:         req.Date,
		Pricing:      req.Pricing,
		Note:         req.Note,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now(),
	}
	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		if errors.Is(err, domain.ErrSessionOverlap) {
			return nil, domain.NewHallConflict("hall is already booked for this window", nil)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return sess, nil
}

func (s *scheduleService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *scheduleService) ListSessions(ctx context.Context, p domain.PaginationParams) ([]*domain.Session, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	sessions, total, err := s.sessionRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, total, nil
}

// DeleteSessions removes the batch atomically: one unknown id fails the whole
// batch and nothing is removed.
func (s *scheduleService) DeleteSessions(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(ids) == 0 {
		return nil
	}
	if err := s.sessionRepo.DeleteMany(ctx, ids); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete sessions: %w", err)
	}

	if s.publisher != nil {
		event := domain.SessionsCancelledEvent{
			SessionIDs:  ids,
			CancelledAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishSessionsCancelled(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "publish sessions cancelled failed", "err", err)
		}
	}
	return nil
}

// validateCandidate runs the scheduling checks in order: resolve references,
// check the interval, then scan the hall's committed sessions for overlap,
// skipping excludeID on updates.
func (s *scheduleService) validateCandidate(ctx context.Context, req domain.SessionRequest, excludeID string) error {
	if _, err := s.catalog.GetMovie(ctx, req.MovieID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewUnknownResource("movie", req.MovieID)
		}
		return fmt.Errorf("resolve movie: %w", err)
	}
	if _, err := s.catalog.GetHall(ctx, req.HallID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewUnknownResource("hall", req.HallID)
		}
		return fmt.Errorf("resolve hall: %w", err)
	}
	if _, err := s.catalog.GetCinema(ctx, req.CinemaID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewUnknownResource("cinema", req.CinemaID)
		}
		return fmt.Errorf("resolve cinema: %w", err)
	}

	if !req.SessionStart.Before(req.SessionEnd) {
		return domain.NewInvalidInterval("session start must be before session end")
	}

	booked, err := s.catalog.ListSessionsForHall(ctx, req.HallID)
	if err != nil {
		return fmt.Errorf("list sessions for hall: %w", err)
	}
	var conflictIDs []string
	for _, b := range booked {
		if b.ID == excludeID {
			continue
		}
		if domain.Overlaps(req.SessionStart, req.SessionEnd, b.SessionStart, b.SessionEnd) {
			conflictIDs = append(conflictIDs, b.ID)
		}
	}
	if len(conflictIDs) > 0 {
		return domain.NewHallConflict("hall is already booked for this window", conflictIDs)
	}
	return nil
}

func (s *scheduleService) publishScheduled(ctx context.Context, sess *domain.Session) {
	if s.publisher == nil {
		return
	}
	event := domain.SessionScheduledEvent{
		SessionID:   sess.ID,
		Code:        sess.Code,
		MovieID:     sess.MovieID,
		HallID:      sess.HallID,
		CinemaID:    sess.CinemaID,
		StartsAt:    sess.SessionStart.UTC().Format(time.RFC3339),
		EndsAt:      sess.SessionEnd.UTC().Format(time.RFC3339),
		Date:        sess.Date.UTC().Format("2006-01-02"),
		Pricing:     sess.Pricing,
		ScheduledAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishSessionScheduled(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "publish session scheduled failed", "session_id", sess.ID, "err", err)
	}
}
