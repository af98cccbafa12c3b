// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"testing"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/service"
	"github.com/verdantlabs/wastesentry/models"
)

// ─────────────────────────────────────────────
// Shared service fakes
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn             func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn        func(ctx context.Context, tokenString string) (models.Token, error)
	authorizeFeedStopFn func(ctx context.Context, pin string) error
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) AuthorizeFeedStop(ctx context.Context, pin string) error {
	return m.authorizeFeedStopFn(ctx, pin)
}

// mockFeedService implements service.FeedService.
type mockFeedService struct {
	startFn        func(ctx context.Context) error
	stopFn         func(ctx context.Context, pin string) error
	uploadFrameFn  func(ctx context.Context, data []byte, source string) error
	currentFrameFn func() (models.Frame, error)
	activeFn       func() bool
}

func (m *mockFeedService) Start(ctx context.Context) error { return m.startFn(ctx) }

func (m *mockFeedService) Stop(ctx context.Context, pin string) error { return m.stopFn(ctx, pin) }

func (m *mockFeedService) UploadFrame(ctx context.Context, data []byte, source string) error {
	return m.uploadFrameFn(ctx, data, source)
}

func (m *mockFeedService) CurrentFrame() (models.Frame, error) { return m.currentFrameFn() }

func (m *mockFeedService) Active() bool {
	if m.activeFn == nil {
		return false
	}
	return m.activeFn()
}

// mockCaptureService implements service.CaptureService.
type mockCaptureService struct {
	captureFn    func(ctx context.Context, frame models.Frame, precomputed *models.AnalysisResult) (models.CaptureOutcome, error)
	inProgressFn func() bool
}

func (m *mockCaptureService) Capture(ctx context.Context, frame models.Frame, precomputed *models.AnalysisResult) (models.CaptureOutcome, error) {
	return m.captureFn(ctx, frame, precomputed)
}

func (m *mockCaptureService) InProgress() bool {
	if m.inProgressFn == nil {
		return false
	}
	return m.inProgressFn()
}

// mockCustodyService implements service.CustodyService.
type mockCustodyService struct {
	requestAccessFn   func(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error)
	approveFn         func(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	denyFn            func(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	unlockFn          func(ctx context.Context, evidenceID string) (models.EvidenceItem, error)
	revokeFn          func(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	verifyIntegrityFn func(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error)
	inspectFn         func(ctx context.Context, evidenceID string) (models.EvidenceItem, error)
	listFn            func(ctx context.Context) ([]models.EvidenceItem, error)
}

func (m *mockCustodyService) RequestAccess(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error) {
	return m.requestAccessFn(ctx, req)
}

func (m *mockCustodyService) Approve(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return m.approveFn(ctx, decision)
}

func (m *mockCustodyService) Deny(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return m.denyFn(ctx, decision)
}

func (m *mockCustodyService) Unlock(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	return m.unlockFn(ctx, evidenceID)
}

func (m *mockCustodyService) Revoke(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return m.revokeFn(ctx, decision)
}

func (m *mockCustodyService) VerifyIntegrity(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return m.verifyIntegrityFn(ctx, decision)
}

func (m *mockCustodyService) Inspect(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	return m.inspectFn(ctx, evidenceID)
}

func (m *mockCustodyService) List(ctx context.Context) ([]models.EvidenceItem, error) {
	return m.listFn(ctx)
}

// mockSentryService implements service.SentryService.
type mockSentryService struct {
	startFn  func(ctx context.Context)
	stopFn   func()
	statusFn func() models.SentryStatus
}

func (m *mockSentryService) Start(ctx context.Context) {
	if m.startFn != nil {
		m.startFn(ctx)
	}
}

func (m *mockSentryService) Stop() {
	if m.stopFn != nil {
		m.stopFn()
	}
}

func (m *mockSentryService) Status() models.SentryStatus {
	if m.statusFn == nil {
		return models.SentryStatus{State: service.SentryIdle}
	}
	return m.statusFn()
}

// mockAuditService implements service.AuditService.
type mockAuditService struct {
	blocksFn   func(ctx context.Context) ([]models.AuditBlock, error)
	validateFn func(ctx context.Context) (models.ChainStatus, error)
}

func (m *mockAuditService) Blocks(ctx context.Context) ([]models.AuditBlock, error) {
	return m.blocksFn(ctx)
}

func (m *mockAuditService) Validate(ctx context.Context) (models.ChainStatus, error) {
	return m.validateFn(ctx)
}

// mockAlertService implements service.AlertService.
type mockAlertService struct {
	listFn func(ctx context.Context) ([]models.Alert, error)
}

func (m *mockAlertService) List(ctx context.Context) ([]models.Alert, error) {
	return m.listFn(ctx)
}

// mockRosterService implements service.RosterService.
type mockRosterService struct {
	listFn func(ctx context.Context) ([]models.FieldWorker, error)
}

func (m *mockRosterService) List(ctx context.Context) ([]models.FieldWorker, error) {
	return m.listFn(ctx)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler whose services default to nil. Tests set
// only the services their endpoint touches.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(services, logger.Nop())
}
