// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/feed"
	"github.com/verdantlabs/wastesentry/internal/service"
)

func TestStartFeed(t *testing.T) {
	feedSvc := &mockFeedService{
		startFn:  func(_ context.Context) error { return nil },
		activeFn: func() bool { return true },
	}
	h := newTestHandler(t, &service.Services{FeedService: feedSvc})

	rec := httptest.NewRecorder()
	h.startFeed(rec, httptest.NewRequest(http.MethodPost, "/api/feed/start", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"active":true}`, rec.Body.String())
}

func TestStartFeed_AlreadyActive(t *testing.T) {
	feedSvc := &mockFeedService{
		startFn: func(_ context.Context) error { return feed.ErrFeedAlreadyActive },
	}
	h := newTestHandler(t, &service.Services{FeedService: feedSvc})

	rec := httptest.NewRecorder()
	h.startFeed(rec, httptest.NewRequest(http.MethodPost, "/api/feed/start", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStopFeed_InvalidPIN(t *testing.T) {
	feedSvc := &mockFeedService{
		stopFn: func(_ context.Context, pin string) error {
			assert.Equal(t, "0000", pin)
			return service.ErrInvalidPIN
		},
	}
	h := newTestHandler(t, &service.Services{FeedService: feedSvc})

	req := httptest.NewRequest(http.MethodPost, "/api/feed/stop", strings.NewReader(`{"pin":"0000"}`))
	rec := httptest.NewRecorder()

	h.stopFeed(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStopFeed(t *testing.T) {
	var stopped bool
	feedSvc := &mockFeedService{
		stopFn: func(_ context.Context, pin string) error {
			assert.Equal(t, "1234", pin)
			stopped = true
			return nil
		},
		activeFn: func() bool { return false },
	}
	h := newTestHandler(t, &service.Services{FeedService: feedSvc})

	req := httptest.NewRequest(http.MethodPost, "/api/feed/stop", strings.NewReader(`{"pin":"1234"}`))
	rec := httptest.NewRecorder()

	h.stopFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stopped)
	assert.JSONEq(t, `{"active":false}`, rec.Body.String())
}

func TestUploadFrame(t *testing.T) {
	var uploadedSource string
	feedSvc := &mockFeedService{
		uploadFrameFn: func(_ context.Context, data []byte, source string) error {
			assert.NotEmpty(t, data)
			uploadedSource = source
			return nil
		},
		activeFn: func() bool { return true },
	}
	h := newTestHandler(t, &service.Services{FeedService: feedSvc})

	frameJSON := `{"data":"aGVsbG8tZnJhbWU=","source":"Uploaded Image"}`
	req := httptest.NewRequest(http.MethodPost, "/api/feed/frame", strings.NewReader(frameJSON))
	rec := httptest.NewRecorder()

	h.uploadFrame(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Uploaded Image", uploadedSource)
}
