package http

import (
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
)

func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	alerts, err := h.services.AlertService.List(ctx)
	if err != nil {
		log.Err(err).Msg("error listing alerts")
		http.Error(w, "error listing alerts", statusFromError(err))
		return
	}

	utils.WriteJSON(w, alerts, http.StatusOK)
}
