package http

import (
	"encoding/json"
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

// captureStatusResponse reports whether a pipeline run is currently
// executing.
type captureStatusResponse struct {
	InProgress bool `json:"in_progress"`
}

func (h *Handler) capture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var captureRequest models.CaptureRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&captureRequest); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	// When no frame is supplied the current frame of the active feed is
	// captured instead.
	var frame models.Frame
	if captureRequest.Frame != nil {
		frame = *captureRequest.Frame
	} else {
		currentFrame, err := h.services.FeedService.CurrentFrame()
		if err != nil {
			log.Err(err).Msg("no frame available for capture")
			http.Error(w, "no frame available for capture", statusFromError(err))
			return
		}
		frame = currentFrame
	}

	outcome, err := h.services.CaptureService.Capture(ctx, frame, nil)
	if err != nil {
		log.Err(err).Msg("error running capture pipeline")
		http.Error(w, "error running capture pipeline", statusFromError(err))
		return
	}

	status := http.StatusOK
	if outcome.Evidence != nil {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, outcome, status)
}

func (h *Handler) captureStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, captureStatusResponse{InProgress: h.services.CaptureService.InProgress()}, http.StatusOK)
}
