package http

import (
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
)

func (h *Handler) listRoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	workers, err := h.services.RosterService.List(ctx)
	if err != nil {
		log.Err(err).Msg("error listing field workers")
		http.Error(w, "error listing field workers", statusFromError(err))
		return
	}

	utils.WriteJSON(w, workers, http.StatusOK)
}
