// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/service"
	"github.com/verdantlabs/wastesentry/models"
)

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// TestLogin_Success verifies that valid credentials result in 200 OK, an
// Authorization header with the issued Bearer token, and a JSON body carrying
// the operator's login and role.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken, Login: u.Login, Role: models.RoleAdmin}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := userBody(t, models.User{Login: "admin", Password: "secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var session models.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&session))
	assert.Equal(t, "admin", session.Login)
	assert.Equal(t, models.RoleAdmin, session.Role)
}

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request without reaching the service.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_EmptyCredentials verifies that the service's credential rejection
// maps to 401 Unauthorized.
func TestLogin_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := userBody(t, models.User{Login: "", Password: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}
