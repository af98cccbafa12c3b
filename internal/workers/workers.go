package workers

import (
	"context"

	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. With no
// auto-start flags set the aggregate is empty and Run is a no-op; the feed
// and the sentry loop are then armed by operators over the API.
func NewWorkers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.Feed.AutoStart {
		w.workers = append(w.workers, &feedWorker{feed: services.FeedService, logger: logger})
	}
	if cfg.Sentry.AutoStart {
		w.workers = append(w.workers, &sentryWorker{sentry: services.SentryService, logger: logger})
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// feedWorker acquires the simulated camera at startup.
type feedWorker struct {
	feed   service.FeedService
	logger *logger.Logger
}

func (w *feedWorker) Run() {
	if err := w.feed.Start(context.Background()); err != nil {
		w.logger.Err(err).Msg("feed auto-start failed")
		return
	}
	w.logger.Info().Msg("feed auto-started")
}

// sentryWorker arms the autonomous scan loop at startup. The loop owns its
// own goroutine, so Run returns immediately.
type sentryWorker struct {
	sentry service.SentryService
	logger *logger.Logger
}

func (w *sentryWorker) Run() {
	w.sentry.Start(context.Background())
	w.logger.Info().Msg("sentry loop auto-armed")
}
