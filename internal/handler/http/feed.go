package http

import (
	"encoding/json"
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

// feedStateResponse reports whether any frame source is live after a feed
// lifecycle call.
type feedStateResponse struct {
	Active bool `json:"active"`
}

func (h *Handler) startFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.FeedService.Start(ctx); err != nil {
		log.Err(err).Msg("error starting camera feed")
		http.Error(w, "error starting camera feed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, feedStateResponse{Active: h.services.FeedService.Active()}, http.StatusOK)
}

func (h *Handler) stopFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var stopRequest models.FeedStopRequest
	if err := json.NewDecoder(r.Body).Decode(&stopRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.FeedService.Stop(ctx, stopRequest.PIN); err != nil {
		log.Err(err).Msg("error stopping camera feed")
		http.Error(w, "error stopping camera feed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, feedStateResponse{Active: h.services.FeedService.Active()}, http.StatusOK)
}

func (h *Handler) uploadFrame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var frame models.Frame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.FeedService.UploadFrame(ctx, frame.Data, frame.Source); err != nil {
		log.Err(err).Msg("error uploading static frame")
		http.Error(w, "error uploading static frame", statusFromError(err))
		return
	}

	utils.WriteJSON(w, feedStateResponse{Active: h.services.FeedService.Active()}, http.StatusCreated)
}
