package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{
			name:       "message response",
			data:       models.MessageResponse{Email: "bob@example.com", Message: "user created"},
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   `{"email":"bob@example.com","message":"user created"}`,
		},
		{
			name:       "custom status",
			data:       models.ErrorResponse{Error: "Not found"},
			status:     http.StatusNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Not found"}`,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantStatus: http.StatusOK,
			wantBody:   "null",
		},
		{
			// channels cannot be marshaled to JSON
			name:       "invalid data",
			data:       make(chan int),
			status:     http.StatusOK,
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
