package helpers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDTO struct {
	Name string `json:"name"`
}

func (d testDTO) Validate() []string {
	if d.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantOK bool
	}{
		{"valid body", `{"name": "ok"}`, true},
		{"validation failure", `{"name": ""}`, false},
		{"malformed json", `{"name":`, false},
		{"unknown field rejected", `{"name": "ok", "extra": 1}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			var dto testDTO
			ok := DecodeAndValidate(rec, req, &dto)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			}
		})
	}
}
