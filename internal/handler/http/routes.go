package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// authorized routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/feed/start", h.startFeed)
		r.Post("/api/feed/stop", h.stopFeed)
		r.Post("/api/feed/frame", h.uploadFrame)

		r.Post("/api/capture", h.capture)
		r.Get("/api/capture/status", h.captureStatus)

		r.Post("/api/sentry/start", h.startSentry)
		r.Post("/api/sentry/stop", h.stopSentry)
		r.Get("/api/sentry/status", h.sentryStatus)

		r.Get("/api/evidence", h.listEvidence)
		r.Get("/api/evidence/{id}", h.inspectEvidence)
		r.Post("/api/evidence/{id}/request", h.requestAccess)
		r.Post("/api/evidence/{id}/approve", h.approveAccess)
		r.Post("/api/evidence/{id}/deny", h.denyAccess)
		r.Post("/api/evidence/{id}/unlock", h.unlockEvidence)
		r.Post("/api/evidence/{id}/revoke", h.revokeAccess)
		r.Post("/api/evidence/{id}/verify", h.verifyEvidence)

		r.Get("/api/audit", h.listAuditBlocks)
		r.Get("/api/audit/validate", h.validateAuditChain)

		r.Get("/api/alerts", h.listAlerts)
		r.Get("/api/roster", h.listRoster)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
