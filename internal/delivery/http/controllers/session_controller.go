package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cinephoria/internal/delivery/http/helpers"
	"cinephoria/internal/domain"
)

// dateLayout is the calendar-date format accepted in session payloads.
const dateLayout = "2006-01-02"

// SessionRequestBody is the request body for POST /sessions and
// PUT /sessions/{sessionID}.
type SessionRequestBody struct {
	MovieID      string    `json:"movie_id"`
	HallID       string    `json:"hall_id"`
	CinemaID     string    `json:"cinema_id"`
	SessionStart time.Time `json:"session_start"`
	SessionEnd   time.Time `json:"session_end"`
	Date         string    `json:"date"`
	Pricing      float64   `json:"pricing"`
	Note         float64   `json:"note"`
}

// Validate implements Validator. Interval and reference checks beyond shape
// belong to the scheduler; only input shape is validated here.
func (b SessionRequestBody) Validate() []string {
	var errs []string
	if b.MovieID == "" {
		errs = append(errs, "movie_id is required")
	}
	if b.HallID == "" {
		errs = append(errs, "hall_id is required")
	}
	if b.CinemaID == "" {
		errs = append(errs, "cinema_id is required")
	}
	if b.SessionStart.IsZero() {
		errs = append(errs, "session_start is required")
	}
	if b.SessionEnd.IsZero() {
		errs = append(errs, "session_end is required")
	}
	if b.Date == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(dateLayout, b.Date); err != nil {
		errs = append(errs, "date must be formatted as YYYY-MM-DD")
	}
	if b.Pricing < 0 {
		errs = append(errs, "pricing must not be negative")
	}
	return errs
}

func (b SessionRequestBody) toDomain() domain.SessionRequest {
	date, _ := time.Parse(dateLayout, b.Date)
	return domain.SessionRequest{
		MovieID:      b.MovieID,
		HallID:       b.HallID,
		CinemaID:     b.CinemaID,
		SessionStart: b.SessionStart,
		SessionEnd:   b.SessionEnd,
		Date:         date,
		Pricing:      b.Pricing,
		Note:         b.Note,
	}
}

// DeleteSessionsRequest is the request body for DELETE /sessions (batch).
type DeleteSessionsRequest struct {
	IDs []string `json:"ids"`
}

// Validate implements Validator.
func (d DeleteSessionsRequest) Validate() []string {
	var errs []string
	if len(d.IDs) == 0 {
		errs = append(errs, "ids must not be empty")
	}
	for _, id := range d.IDs {
		if id == "" {
			errs = append(errs, "ids must not contain empty values")
			break
		}
	}
	return errs
}

// SessionSuccessResponse is the success envelope for session endpoints.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListSessionsResponse is the data payload for GET /sessions.
type ListSessionsResponse struct {
	Sessions   []*domain.Session      `json:"sessions"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewSessionController(logger *slog.Logger, svc domain.ScheduleService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Propose a new session
// @Description Validates a candidate booking (resolvable references, positive interval, no hall overlap) and persists it with the next sequential code. Conflict rejections carry the colliding session id(s).
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body SessionRequestBody true "Candidate session"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the accepted session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, error.conflict_ids set"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.ProposeSession(r.Context(), req.toDomain())
	if err != nil {
		c.writeSchedulingError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sess)
}

// UpdateSession godoc
// @Summary Update a session
// @Description Re-validates the session as if it were a new booking, excluding its own prior instance from the conflict check. The sequential code is kept.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param session body SessionRequestBody true "Updated session"
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [put]
func (c *SessionController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	var req SessionRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, err := c.Service.UpdateSession(r.Context(), sessionID, req.toDomain())
	if err != nil {
		c.writeSchedulingError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// GetSession godoc
// @Summary Get a session by ID
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} controllers.SessionSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/{sessionID} [get]
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing sessionID")
		return
	}
	sess, err := c.Service.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sess)
}

// ListSessions godoc
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains sessions and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [get]
func (c *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	p := helpers.ParsePagination(r)
	sessions, total, err := c.Service.ListSessions(r.Context(), p)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListSessionsResponse{
		Sessions:   sessions,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// DeleteSessions godoc
// @Summary Delete sessions in batch
// @Description Removes the given sessions atomically: if any id does not exist the whole batch fails and nothing is removed. Remaining sessions are never renumbered.
// @Tags sessions
// @Accept json
// @Produce json
// @Param ids body DeleteSessionsRequest true "Session ids to remove"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions [delete]
func (c *SessionController) DeleteSessions(w http.ResponseWriter, r *http.Request) {
	var req DeleteSessionsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.DeleteSessions(r.Context(), req.IDs); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "one or more sessions do not exist; nothing was deleted")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// writeSchedulingError maps scheduler rejections onto the response envelope:
// unknown references and invalid intervals are 400s, hall conflicts are 409s
// with the colliding ids, a missing session is a 404, and anything else is a
// persistence or catalog failure worth logging.
func (c *SessionController) writeSchedulingError(w http.ResponseWriter, r *http.Request, err error) {
	if se, ok := domain.AsSchedulingError(err); ok {
		switch se.Kind {
		case domain.SchedulingHallConflict:
			helpers.WriteJSONConflict(w, se.Detail, se.ConflictIDs)
		default:
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, se.Error())
		}
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "session not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
