package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-zkeb/internal/service"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	protectedGet := func(router http.Handler, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/backup/sync", bytes.NewReader(nil))
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := protectedGet(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "empty `Authorization` header")
	})

	t.Run("header without token", func(t *testing.T) {
		router, _, _ := newTestRouter(t)

		rec := protectedGet(router, "Bearer")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid `Authorization` header")
	})

	t.Run("expired token", func(t *testing.T) {
		router, auth, _ := newTestRouter(t)

		auth.EXPECT().
			ParseToken(gomock.Any(), "stale").
			Return(models.Token{}, service.ErrTokenIsExpired)

		rec := protectedGet(router, "Bearer stale")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("trace id header is set", func(t *testing.T) {
		router, auth, backup := newTestRouter(t)
		expectAuthenticated(auth)
		backup.EXPECT().
			SyncStates(gomock.Any(), "device-1").
			Return(models.SyncResponse{}, nil)

		rec := protectedGet(router, "Bearer valid-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	})
}

func TestMethodNotAllowedHidesRoutes(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/device/register", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// unsupported methods on known routes answer 404, not 405
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
