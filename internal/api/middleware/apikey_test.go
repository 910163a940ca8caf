package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/forecast-api/internal/api/middleware"
	"github.com/phrazzld/forecast-api/internal/apikey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key-value"

// okHandler records whether it was reached and answers 200 "ok".
func okHandler(reached *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestAPIKey(t *testing.T) {
	gate, err := apikey.NewGate(testAPIKey)
	require.NoError(t, err)

	tests := []struct {
		name          string
		setHeader     bool
		headerValue   string
		expectStatus  int
		expectBody    string
		expectReached bool
	}{
		{
			name:          "matching key",
			setHeader:     true,
			headerValue:   testAPIKey,
			expectStatus:  http.StatusOK,
			expectBody:    "ok",
			expectReached: true,
		},
		{
			name:         "missing header",
			expectStatus: http.StatusUnauthorized,
			expectBody:   middleware.MissingAPIKeyMessage,
		},
		{
			name:         "wrong key",
			setHeader:    true,
			headerValue:  "not-the-key",
			expectStatus: http.StatusForbidden,
			expectBody:   middleware.InvalidAPIKeyMessage,
		},
		{
			name:         "present but empty",
			setHeader:    true,
			headerValue:  "",
			expectStatus: http.StatusForbidden,
			expectBody:   middleware.InvalidAPIKeyMessage,
		},
		{
			name:         "case differs",
			setHeader:    true,
			headerValue:  "TEST-API-KEY-VALUE",
			expectStatus: http.StatusForbidden,
			expectBody:   middleware.InvalidAPIKeyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			handler := middleware.APIKey(gate)(okHandler(&reached))

			req := httptest.NewRequest(http.MethodGet, "/weatherforecast", nil)
			if tt.setHeader {
				req.Header.Set(apikey.HeaderName, tt.headerValue)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectBody, rec.Body.String())
			assert.Equal(t, tt.expectReached, reached)
		})
	}
}

func TestAPIKeyHeaderNameIsCaseInsensitive(t *testing.T) {
	gate, err := apikey.NewGate(testAPIKey)
	require.NoError(t, err)

	reached := false
	handler := middleware.APIKey(gate)(okHandler(&reached))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-api-key", testAPIKey)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}
