// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/verdantlabs/wastesentry/internal/analyzer"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

const defaultScanInterval = 6 * time.Second

// Sentry controller states reported by Status.
const (
	SentryIdle     = "idle"
	SentryArmed    = "armed"
	SentryScanning = "scanning"
)

// sentryService is the concrete implementation of SentryService.
//
// The loop is idle until Start; each tick is single-flight with respect to
// both itself and the capture pipeline. A positive detection disarms the
// loop before handing off to the pipeline, so at most one automatic capture
// results from one arming.
type sentryService struct {
	source   FeedService
	analyzer analyzer.SceneAnalyzer
	capture  CaptureService
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	scanInFlight atomic.Bool
	ticks        atomic.Int64

	logger *logger.Logger
}

// NewSentryService constructs the sentry controller. A non-positive scan
// interval falls back to 6 seconds.
func NewSentryService(source FeedService, sceneAnalyzer analyzer.SceneAnalyzer, capture CaptureService, cfg config.Sentry, logger *logger.Logger) SentryService {
	interval := cfg.ScanInterval
	if interval <= 0 {
		interval = defaultScanInterval
	}

	return &sentryService{
		source:   source,
		analyzer: sceneAnalyzer,
		capture:  capture,
		interval: interval,
		logger:   logger,
	}
}

// Start implements [SentryService]. A running loop is stopped and restarted;
// the tick counter resets.
func (s *sentryService) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.ticks.Store(0)
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().Dur("interval", s.interval).Msg("sentry loop armed")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				s.tick(loopCtx)
			}
		}
	}()
}

// Stop implements [SentryService]. It cancels the loop context and blocks
// until the goroutine has fully exited. Safe to call when not running.
func (s *sentryService) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Status implements [SentryService].
func (s *sentryService) Status() models.SentryStatus {
	s.mu.Lock()
	running := s.cancel != nil
	s.mu.Unlock()

	state := SentryIdle
	switch {
	case running:
		state = SentryScanning
	case s.source.Active():
		state = SentryArmed
	}

	return models.SentryStatus{
		State:         state,
		TicksObserved: int(s.ticks.Load()),
	}
}

// tick runs one scan. Ticks that would overlap a running scan or capture
// are skipped, never queued.
func (s *sentryService) tick(ctx context.Context) {
	if !s.scanInFlight.CompareAndSwap(false, true) {
		return
	}
	defer s.scanInFlight.Store(false)

	s.ticks.Add(1)

	if s.capture.InProgress() {
		s.logger.Debug().Msg("sentry tick skipped: capture in progress")
		return
	}

	frame, err := s.source.CurrentFrame()
	if err != nil {
		s.logger.Debug().Err(err).Msg("sentry tick skipped: no frame")
		return
	}

	analysis, err := s.analyzer.Analyze(ctx, frame)
	if err != nil {
		s.logger.Warn().Err(err).Msg("sentry scan failed")
		return
	}

	// the analyzer can outlive the feed; a result for a dead feed is stale
	if !s.source.Active() {
		s.logger.Warn().Err(ErrStaleAnalysis).Msg("sentry scan result discarded")
		return
	}

	if !analysis.IsDumpingDetected {
		return
	}

	// single-shot: disarm before handing off so a slow pipeline never
	// overlaps another automatic trigger
	s.disarm()

	s.logger.Info().Str("source", frame.Source).Msg("sentry detection, handing off to capture pipeline")

	// disarming cancelled the loop context; the handoff must still complete
	handoffCtx := context.WithoutCancel(ctx)
	if _, err := s.capture.Capture(handoffCtx, frame, &analysis); err != nil {
		s.logger.Err(err).Msg("sentry-initiated capture failed")
	}
}

// disarm cancels the loop without waiting for the goroutine, which is the
// caller on this path.
func (s *sentryService) disarm() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
