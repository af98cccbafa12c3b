// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/service"
	"github.com/verdantlabs/wastesentry/models"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good.jwt.token" {
				return models.Token{}, service.ErrTokenIsExpired
			}
			return models.Token{Login: "inspector", Role: models.RoleOfficer}, nil
		},
	}
	alerts := &mockAlertService{
		listFn: func(_ context.Context) ([]models.Alert, error) {
			return []models.Alert{{ID: "init-1", Type: models.AlertTypeWaste}}, nil
		},
	}
	roster := &mockRosterService{
		listFn: func(_ context.Context) ([]models.FieldWorker, error) {
			return []models.FieldWorker{{Name: "Thabo M."}}, nil
		},
	}
	audit := &mockAuditService{
		validateFn: func(_ context.Context) (models.ChainStatus, error) {
			return models.ChainStatus{Valid: true, Length: 1}, nil
		},
	}

	h := newTestHandler(t, &service.Services{
		AuthService:    auth,
		AlertService:   alerts,
		RosterService:  roster,
		AuditService:   audit,
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	})
	return h.Init()
}

// TestRoutes_VersionIsOpen verifies the version endpoint requires no token.
func TestRoutes_VersionIsOpen(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}

// TestRoutes_ProtectedRequireToken verifies every API group behind the auth
// middleware rejects anonymous requests.
func TestRoutes_ProtectedRequireToken(t *testing.T) {
	router := newTestRouter(t)

	protected := []string{
		"/api/evidence",
		"/api/audit",
		"/api/alerts",
		"/api/roster",
		"/api/sentry/status",
		"/api/capture/status",
	}
	for _, target := range protected {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRoutes_AuthorizedRead(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/alerts", "/api/roster", "/api/audit/validate"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer good.jwt.token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

// TestRoutes_UnsupportedMethodHidden verifies the MethodNotAllowed override
// responds 404 instead of 405.
func TestRoutes_UnsupportedMethodHidden(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/version", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
