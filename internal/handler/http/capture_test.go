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

// TestCapture_UsesCurrentFrame verifies that a capture request without a
// frame grabs the current frame of the active feed.
func TestCapture_UsesCurrentFrame(t *testing.T) {
	feedSvc := &mockFeedService{
		currentFrameFn: func() (models.Frame, error) {
			return models.Frame{Data: []byte("live-frame"), Source: "Camera 01 - Main St"}, nil
		},
	}
	capture := &mockCaptureService{
		captureFn: func(_ context.Context, frame models.Frame, precomputed *models.AnalysisResult) (models.CaptureOutcome, error) {
			assert.Equal(t, []byte("live-frame"), frame.Data)
			assert.Nil(t, precomputed)
			return models.CaptureOutcome{
				Analysis: models.AnalysisResult{IsDumpingDetected: true, WasteLevel: 95},
				Evidence: &models.EvidenceItem{ID: "EV-1", Status: models.StatusLocked},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{FeedService: feedSvc, CaptureService: capture})

	rec := httptest.NewRecorder()
	h.capture(rec, httptest.NewRequest(http.MethodPost, "/api/capture", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var outcome models.CaptureOutcome
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&outcome))
	require.NotNil(t, outcome.Evidence)
	assert.Equal(t, "EV-1", outcome.Evidence.ID)
}

// TestCapture_GateNotPassed verifies that a clean scene returns 200 with the
// analysis only.
func TestCapture_GateNotPassed(t *testing.T) {
	capture := &mockCaptureService{
		captureFn: func(_ context.Context, frame models.Frame, _ *models.AnalysisResult) (models.CaptureOutcome, error) {
			return models.CaptureOutcome{
				Analysis: models.AnalysisResult{IsDumpingDetected: false, WasteLevel: 20},
			}, nil
		},
	}
	h := newTestHandler(t, &service.Services{CaptureService: capture})

	body := `{"frame":{"data":"c29tZS1mcmFtZQ==","source":"Uploaded Image"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/capture", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.capture(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome models.CaptureOutcome
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&outcome))
	assert.Nil(t, outcome.Evidence)
	assert.Nil(t, outcome.Alert)
}

func TestCapture_InProgress(t *testing.T) {
	capture := &mockCaptureService{
		captureFn: func(_ context.Context, _ models.Frame, _ *models.AnalysisResult) (models.CaptureOutcome, error) {
			return models.CaptureOutcome{}, service.ErrCaptureInProgress
		},
	}
	h := newTestHandler(t, &service.Services{CaptureService: capture})

	body := `{"frame":{"data":"c29tZS1mcmFtZQ==","source":"Uploaded Image"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/capture", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.capture(rec, req)

	assert.Equal(t, http.StatusLocked, rec.Code)
}

func TestCaptureStatus(t *testing.T) {
	capture := &mockCaptureService{inProgressFn: func() bool { return true }}
	h := newTestHandler(t, &service.Services{CaptureService: capture})

	rec := httptest.NewRecorder()
	h.captureStatus(rec, httptest.NewRequest(http.MethodGet, "/api/capture/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"in_progress":true}`, rec.Body.String())
}
