// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/verdantlabs/wastesentry/internal/analyzer"
	"github.com/verdantlabs/wastesentry/internal/audit"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/crypto"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/privacy"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

// Phase identifies one observable stage of the capture pipeline.
type Phase string

// Pipeline phases in execution order.
const (
	PhaseDetect    Phase = "detect"
	PhaseGate      Phase = "gate"
	PhaseAnonymize Phase = "anonymize"
	PhaseSeal      Phase = "seal"
	PhaseVault     Phase = "vault"
	PhaseNotify    Phase = "notify"
)

// PhaseObserver receives pipeline phase notifications for operator feedback.
// Observers must be fast; they are called synchronously on the pipeline path.
type PhaseObserver func(phase Phase)

// dumpingAlertMessage is the fixed notification raised on an active dumping
// detection.
const dumpingAlertMessage = "ALERT: Active Illegal Dumping Detected!"

const defaultWasteLevelThreshold = 80

// captureService is the concrete implementation of CaptureService.
type captureService struct {
	analyzer   analyzer.SceneAnalyzer
	anonymizer privacy.Anonymizer
	sealer     crypto.Sealer
	vault      store.EvidenceVault
	alerts     store.AlertFeed
	chain      *audit.Chain
	ids        *utils.IDGenerator

	threshold int
	location  string
	observer  PhaseObserver

	// busy is the system-wide single-flight lock. TryLock rejects, never
	// queues.
	busy       sync.Mutex
	inProgress atomic.Bool

	logger *logger.Logger
}

// NewCaptureService constructs the capture pipeline. The observer may be nil.
func NewCaptureService(
	sceneAnalyzer analyzer.SceneAnalyzer,
	anonymizer privacy.Anonymizer,
	sealer crypto.Sealer,
	vault store.EvidenceVault,
	alerts store.AlertFeed,
	chain *audit.Chain,
	cfg config.Capture,
	observer PhaseObserver,
	logger *logger.Logger,
) CaptureService {
	threshold := cfg.WasteLevelThreshold
	if threshold <= 0 {
		threshold = defaultWasteLevelThreshold
	}

	return &captureService{
		analyzer:   sceneAnalyzer,
		anonymizer: anonymizer,
		sealer:     sealer,
		vault:      vault,
		alerts:     alerts,
		chain:      chain,
		ids:        utils.NewIDGenerator(),
		threshold:  threshold,
		location:   cfg.Location,
		observer:   observer,
		logger:     logger,
	}
}

// Capture implements [CaptureService].
//
// The vault commit is all-or-nothing: a failure in any phase after Detect
// leaves no partial evidence record and no alert behind.
func (s *captureService) Capture(ctx context.Context, frame models.Frame, precomputed *models.AnalysisResult) (models.CaptureOutcome, error) {
	if !s.busy.TryLock() {
		return models.CaptureOutcome{}, ErrCaptureInProgress
	}
	defer s.busy.Unlock()

	s.inProgress.Store(true)
	defer s.inProgress.Store(false)

	log := logger.FromContext(ctx)

	if frame.Empty() {
		return models.CaptureOutcome{}, ErrEmptyFrame
	}

	s.observe(PhaseDetect)
	analysis := s.detect(ctx, frame, precomputed)

	s.observe(PhaseGate)
	if !analysis.IsDumpingDetected && analysis.WasteLevel <= s.threshold {
		log.Info().
			Int("wasteLevel", analysis.WasteLevel).
			Int("threshold", s.threshold).
			Msg("detection gate not passed, nothing vaulted")
		return models.CaptureOutcome{Analysis: analysis}, nil
	}

	s.observe(PhaseAnonymize)
	preview, err := s.anonymizer.Anonymize(frame.Data)
	if err != nil {
		log.Err(err).Msg("anonymization failed, capture aborted")
		return models.CaptureOutcome{Analysis: analysis}, fmt.Errorf("anonymization failed: %w", err)
	}

	s.observe(PhaseSeal)
	sealed, err := s.sealer.Seal(frame.Data)
	if err != nil {
		log.Err(err).Msg("sealing failed, capture aborted")
		return models.CaptureOutcome{Analysis: analysis}, fmt.Errorf("sealing failed: %w", err)
	}

	s.observe(PhaseVault)
	item := models.EvidenceItem{
		ID:              s.ids.GenerateEvidenceID(),
		Timestamp:       time.Now(),
		Location:        s.locationFor(frame),
		EncryptedData:   sealed.Ciphertext,
		Checksum:        s.sealer.Fingerprint(frame.Data),
		OriginalData:    frame.Data,
		BlurredPreview:  preview,
		Status:          models.StatusLocked,
		AIAnalysis:      analysis,
		IntegrityStatus: models.IntegrityUnchecked,
	}
	if err := s.vault.Add(ctx, item); err != nil {
		log.Err(err).Msg("vault commit failed, capture aborted")
		return models.CaptureOutcome{Analysis: analysis}, fmt.Errorf("vault commit failed: %w", err)
	}
	s.chain.Append(models.ActionEvidenceCapture, s.captureActor(ctx), item.ID)

	outcome := models.CaptureOutcome{Analysis: analysis, Evidence: &item}

	s.observe(PhaseNotify)
	if analysis.IsDumpingDetected {
		alert := models.Alert{
			ID:        s.ids.Generate(),
			Type:      models.AlertTypeWaste,
			Severity:  models.SeverityHigh,
			Message:   dumpingAlertMessage,
			Location:  item.Location,
			Timestamp: time.Now(),
		}
		if err := s.alerts.Add(ctx, alert); err != nil {
			log.Err(err).Msg("alert append failed")
		} else {
			outcome.Alert = &alert
		}
	}

	log.Info().
		Str("evidenceID", item.ID).
		Str("location", item.Location).
		Bool("dumping", analysis.IsDumpingDetected).
		Int("wasteLevel", analysis.WasteLevel).
		Msg("evidence captured and vaulted")

	return outcome, nil
}

// InProgress implements [CaptureService].
func (s *captureService) InProgress() bool {
	return s.inProgress.Load()
}

// detect resolves the analysis result: the precomputed one when supplied,
// otherwise a fresh analyzer call. Analyzer failure degrades to the neutral
// fallback result and never aborts the pipeline.
func (s *captureService) detect(ctx context.Context, frame models.Frame, precomputed *models.AnalysisResult) models.AnalysisResult {
	if precomputed != nil {
		return *precomputed
	}

	analysis, err := s.analyzer.Analyze(ctx, frame)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("scene analysis failed, substituting fallback result")
		return models.FallbackAnalysisResult()
	}
	return analysis
}

func (s *captureService) locationFor(frame models.Frame) string {
	if frame.Source != "" {
		return frame.Source
	}
	return s.location
}

// captureActor records the operator for manual captures and SYSTEM for
// sentry-originated ones.
func (s *captureService) captureActor(ctx context.Context) string {
	if user, ok := utils.GetUserFromContext(ctx); ok && user.Login != "" {
		return user.Login
	}
	return models.SystemActor
}

func (s *captureService) observe(phase Phase) {
	if s.observer != nil {
		s.observer(phase)
	}
}
