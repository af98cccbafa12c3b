package http

import (
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
)

func (h *Handler) listAuditBlocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blocks, err := h.services.AuditService.Blocks(ctx)
	if err != nil {
		log.Err(err).Msg("error listing audit blocks")
		http.Error(w, "error listing audit blocks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, blocks, http.StatusOK)
}

func (h *Handler) validateAuditChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	status, err := h.services.AuditService.Validate(ctx)
	if err != nil {
		log.Err(err).Msg("error validating audit chain")
		http.Error(w, "error validating audit chain", statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
