package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinephoria/internal/delivery/http/helpers"
	"cinephoria/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger so handler tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeScheduleService implements domain.ScheduleService for handler tests.
type fakeScheduleService struct {
	proposeErr error
	updateErr  error
	getErr     error
	listErr    error
	deleteErr  error

	session    *domain.Session
	sessions   []*domain.Session
	total      int
	lastReq    domain.SessionRequest
	deletedIDs []string
}

func (f *fakeScheduleService) ProposeSession(ctx context.Context, req domain.SessionRequest) (*domain.Session, error) {
	f.lastReq = req
	if f.proposeErr != nil {
		return nil, f.proposeErr
	}
	return f.session, nil
}

func (f *fakeScheduleService) UpdateSession(ctx context.Context, sessionID string, req domain.SessionRequest) (*domain.Session, error) {
	f.lastReq = req
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.session, nil
}

func (f *fakeScheduleService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

func (f *fakeScheduleService) ListSessions(ctx context.Context, p domain.PaginationParams) ([]*domain.Session, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.sessions, f.total, nil
}

func (f *fakeScheduleService) DeleteSessions(ctx context.Context, ids []string) error {
	f.deletedIDs = ids
	return f.deleteErr
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

const validSessionBody = `{
	"movie_id": "mv-1",
	"hall_id": "hall-1",
	"cinema_id": "cin-1",
	"session_start": "2026-03-14T10:00:00Z",
	"session_end": "2026-03-14T12:00:00Z",
	"date": "2026-03-14",
	"pricing": 9.5,
	"note": 0
}`

func TestSessionController_CreateSession(t *testing.T) {
	scheduled := &domain.Session{
		ID:           "sess-1",
		Code:         "CINE_SESSION-0001",
		MovieID:      "mv-1",
		HallID:       "hall-1",
		CinemaID:     "cin-1",
		SessionStart: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		SessionEnd:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name            string
		body            string
		fakeErr         error
		wantStatus      int
		wantErrCode     string
		wantConflictIDs []string
	}{
		{
			name:       "success",
			body:       validSessionBody,
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed json",
			body:        `{"movie_id":`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "missing hall id",
			body:        `{"movie_id": "mv-1", "cinema_id": "cin-1", "session_start": "2026-03-14T10:00:00Z", "session_end": "2026-03-14T12:00:00Z", "date": "2026-03-14"}`,
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "unknown movie",
			body:        validSessionBody,
			fakeErr:     domain.NewUnknownResource("movie", "mv-1"),
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "invalid interval",
			body:        validSessionBody,
			fakeErr:     domain.NewInvalidInterval("session start must be before session end"),
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:            "hall conflict carries colliding ids",
			body:            validSessionBody,
			fakeErr:         domain.NewHallConflict("hall is already booked for this window", []string{"sess-9"}),
			wantStatus:      http.StatusConflict,
			wantErrCode:     helpers.ErrCodeConflict,
			wantConflictIDs: []string{"sess-9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeScheduleService{session: scheduled, proposeErr: tt.fakeErr}
			ctrl := NewSessionController(testLogger, fake)

			req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			ctrl.CreateSession(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec.Body)
			if tt.wantErrCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantErrCode, resp.Error.Code)
				assert.Equal(t, tt.wantConflictIDs, resp.Error.ConflictIDs)
				return
			}
			require.Nil(t, resp.Error)
			raw, err := json.Marshal(resp.Data)
			require.NoError(t, err)
			var got domain.Session
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, "CINE_SESSION-0001", got.Code)
			assert.Equal(t, "hall-1", fake.lastReq.HallID)
		})
	}
}

func TestSessionController_UpdateSession(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		fake := &fakeScheduleService{updateErr: domain.ErrNotFound}
		ctrl := NewSessionController(testLogger, fake)

		req := httptest.NewRequest(http.MethodPut, "http://test/sessions/missing", bytes.NewBufferString(validSessionBody))
		req.SetPathValue("sessionID", "missing")
		rec := httptest.NewRecorder()
		ctrl.UpdateSession(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("conflict on reschedule", func(t *testing.T) {
		fake := &fakeScheduleService{updateErr: domain.NewHallConflict("hall is already booked for this window", []string{"sess-2"})}
		ctrl := NewSessionController(testLogger, fake)

		req := httptest.NewRequest(http.MethodPut, "http://test/sessions/sess-1", bytes.NewBufferString(validSessionBody))
		req.SetPathValue("sessionID", "sess-1")
		rec := httptest.NewRecorder()
		ctrl.UpdateSession(rec, req)

		require.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeEnvelope(t, rec.Body)
		require.NotNil(t, resp.Error)
		assert.Equal(t, []string{"sess-2"}, resp.Error.ConflictIDs)
	})
}

func TestSessionController_GetSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeScheduleService{session: &domain.Session{ID: "sess-1", Code: "CINE_SESSION-0001"}}
		ctrl := NewSessionController(testLogger, fake)

		req := httptest.NewRequest(http.MethodGet, "http://test/sessions/sess-1", nil)
		req.SetPathValue("sessionID", "sess-1")
		rec := httptest.NewRecorder()
		ctrl.GetSession(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec.Body)
		require.Nil(t, resp.Error)
	})

	t.Run("not found", func(t *testing.T) {
		fake := &fakeScheduleService{getErr: domain.ErrNotFound}
		ctrl := NewSessionController(testLogger, fake)

		req := httptest.NewRequest(http.MethodGet, "http://test/sessions/missing", nil)
		req.SetPathValue("sessionID", "missing")
		rec := httptest.NewRecorder()
		ctrl.GetSession(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSessionController_ListSessions(t *testing.T) {
	fake := &fakeScheduleService{
		sessions: []*domain.Session{{ID: "sess-1", Code: "CINE_SESSION-0001"}},
		total:    41,
	}
	ctrl := NewSessionController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "/sessions?page=2&page_size=20", nil)
	rec := httptest.NewRecorder()
	ctrl.ListSessions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data struct {
			Sessions   []*domain.Session      `json:"sessions"`
			Pagination helpers.PaginationMeta `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Data.Sessions, 1)
	assert.Equal(t, 2, resp.Data.Pagination.Page)
	assert.Equal(t, 41, resp.Data.Pagination.Total)
	assert.Equal(t, 3, resp.Data.Pagination.TotalPages)
}

func TestSessionController_DeleteSessions(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
	}{
		{"success", `{"ids": ["sess-1", "sess-2"]}`, nil, http.StatusOK},
		{"empty batch", `{"ids": []}`, nil, http.StatusBadRequest},
		{"unknown id fails whole batch", `{"ids": ["sess-1", "missing"]}`, domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeScheduleService{deleteErr: tt.fakeErr}
			ctrl := NewSessionController(testLogger, fake)

			req := httptest.NewRequest(http.MethodDelete, "/sessions", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			ctrl.DeleteSessions(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, []string{"sess-1", "sess-2"}, fake.deletedIDs)
			}
		})
	}
}
