// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/verdantlabs/wastesentry/internal/analyzer"
	"github.com/verdantlabs/wastesentry/internal/audit"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/crypto"
	"github.com/verdantlabs/wastesentry/internal/feed"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/privacy"
	"github.com/verdantlabs/wastesentry/internal/store"
)

// Services aggregates the application services consumed by the transport
// layer.
type Services struct {
	AuthService    AuthService
	FeedService    FeedService
	CaptureService CaptureService
	CustodyService CustodyService
	SentryService  SentryService
	AuditService   AuditService
	AlertService   AlertService
	RosterService  RosterService
	AppInfoService AppInfoService
}

// NewServices wires the full service graph: stores, audit chain, sealer,
// anonymizer, analyzer, camera and the services on top of them.
func NewServices(
	storages store.Storages,
	chain *audit.Chain,
	sceneAnalyzer analyzer.SceneAnalyzer,
	camera feed.Camera,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	sealer := crypto.NewSealer()
	anonymizer := privacy.NewAnonymizer(0)

	authService := NewAuthService(cfg.App, logger)
	feedService := NewFeedService(camera, authService, logger)

	captureService := NewCaptureService(
		sceneAnalyzer, anonymizer, sealer,
		storages.EvidenceVault, storages.AlertFeed, chain,
		cfg.Capture, nil, logger)

	sentryService := NewSentryService(feedService, sceneAnalyzer, captureService, cfg.Sentry, logger)
	feedService.AttachSentry(sentryService)

	custodyService := NewCustodyValidationService(
		NewCustodyService(storages.EvidenceVault, chain, sealer, cfg.Capture, logger))

	return &Services{
		AuthService:    authService,
		FeedService:    feedService,
		CaptureService: captureService,
		CustodyService: custodyService,
		SentryService:  sentryService,
		AuditService:   NewAuditService(chain, logger),
		AlertService:   NewAlertService(storages.AlertFeed, logger),
		RosterService:  NewRosterService(storages.Roster, logger),
		AppInfoService: appInfoService,
	}, nil
}
