package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

func (h *Handler) listEvidence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	items, err := h.services.CustodyService.List(ctx)
	if err != nil {
		log.Err(err).Msg("error listing evidence items")
		http.Error(w, "error listing evidence items", statusFromError(err))
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) inspectEvidence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	item, err := h.services.CustodyService.Inspect(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error inspecting evidence item")
		http.Error(w, "error inspecting evidence item", statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) requestAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var accessRequest models.AccessRequest
	if err := json.NewDecoder(r.Body).Decode(&accessRequest); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	accessRequest.EvidenceID = chi.URLParam(r, "id")

	item, err := h.services.CustodyService.RequestAccess(ctx, accessRequest)
	if err != nil {
		log.Err(err).Msg("error requesting evidence access")
		http.Error(w, "error requesting evidence access", statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) approveAccess(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.services.CustodyService.Approve, "error approving evidence access")
}

func (h *Handler) denyAccess(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.services.CustodyService.Deny, "error denying evidence access")
}

func (h *Handler) revokeAccess(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.services.CustodyService.Revoke, "error revoking evidence access")
}

func (h *Handler) verifyEvidence(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.services.CustodyService.VerifyIntegrity, "error verifying evidence integrity")
}

func (h *Handler) unlockEvidence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	item, err := h.services.CustodyService.Unlock(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("error unlocking evidence item")
		http.Error(w, "error unlocking evidence item", statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

// decide runs one of the admin custody transitions. The evidence ID always
// comes from the URL, never from the body.
func (h *Handler) decide(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error),
	failureMessage string,
) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var decision models.CustodyDecision
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}
	decision.EvidenceID = chi.URLParam(r, "id")

	item, err := transition(ctx, decision)
	if err != nil {
		log.Err(err).Msg(failureMessage)
		http.Error(w, failureMessage, statusFromError(err))
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
