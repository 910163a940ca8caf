package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/mocks"
	"github.com/phrazzld/forecast-api/internal/service"
	"github.com/phrazzld/forecast-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRouter(t *testing.T, users *mocks.MockUserStore) http.Handler {
	t.Helper()

	svc, err := service.NewAuthService(users, &mocks.MockPasswordHasher{}, &mocks.MockFieldCipher{},
		&mocks.MockTokenService{}, nil, service.AuthServiceOptions{})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/admin/users/{username}/social-security-number", NewUserHandler(svc, testSupportContact).RevealSSN)
	return r
}

func getAsAdmin(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	ctx := shared.WithClaims(req.Context(), &auth.Claims{Subject: "root", Role: domain.RoleAdmin})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func TestRevealSSN(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	users.Users["mary"] = &domain.User{Username: "mary", HashedPassword: "hashed:p@ss", Role: domain.RoleUser, EncryptedSSN: "enc:123-45-6789"}
	users.Users["bob"] = &domain.User{Username: "bob", HashedPassword: "hashed:p@ss", Role: domain.RoleUser}
	h := newUserRouter(t, users)

	t.Run("stored ssn", func(t *testing.T) {
		rec := getAsAdmin(h, "/admin/users/mary/social-security-number")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SSNResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, SSNResponse{Username: "mary", SSN: "123-45-6789"}, resp)
	})

	t.Run("no ssn stored", func(t *testing.T) {
		rec := getAsAdmin(h, "/admin/users/bob/social-security-number")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No sensitive data stored")
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := getAsAdmin(h, "/admin/users/nobody/social-security-number")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRevealSSNStoreFailure(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	users.GetByUsernameFn = func(context.Context, string) (*domain.User, error) {
		return nil, errors.New("connection reset by postgres://app:secret@db")
	}
	h := newUserRouter(t, users)

	rec := getAsAdmin(h, "/admin/users/mary/social-security-number")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), testSupportContact)
	assert.NotContains(t, rec.Body.String(), "secret")
}
