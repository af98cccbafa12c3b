package http

import (
	"context"
	"net/http"

	"github.com/verdantlabs/wastesentry/internal/utils"
)

func (h *Handler) startSentry(w http.ResponseWriter, r *http.Request) {
	// The scan loop must outlive this request; WithoutCancel keeps the
	// request-scoped logger attached without inheriting the cancellation.
	h.services.SentryService.Start(context.WithoutCancel(r.Context()))

	utils.WriteJSON(w, h.services.SentryService.Status(), http.StatusOK)
}

func (h *Handler) stopSentry(w http.ResponseWriter, r *http.Request) {
	h.services.SentryService.Stop()

	utils.WriteJSON(w, h.services.SentryService.Status(), http.StatusOK)
}

func (h *Handler) sentryStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.SentryService.Status(), http.StatusOK)
}
