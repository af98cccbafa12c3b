package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.ServerURL and configures the underlying client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ConsoleAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	h.SetToken(token)

	var session models.User
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return models.User{}, fmt.Errorf("login decode response: %w", err)
	}

	h.logger.Info().Str("login", session.Login).Str("role", session.Role).Msg("logged in")
	return session, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) ListEvidence(ctx context.Context) ([]models.EvidenceItem, error) {
	var items []models.EvidenceItem
	if err := h.getJSON(ctx, "/api/evidence", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) InspectEvidence(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	var item models.EvidenceItem
	if err := h.getJSON(ctx, "/api/evidence/"+url.PathEscape(evidenceID), &item); err != nil {
		return models.EvidenceItem{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) RequestAccess(ctx context.Context, req models.AccessRequest) (models.EvidenceItem, error) {
	return h.postTransition(ctx, req.EvidenceID, "request", req)
}

func (h *httpServerAdapter) Approve(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return h.postTransition(ctx, decision.EvidenceID, "approve", decision)
}

func (h *httpServerAdapter) Deny(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return h.postTransition(ctx, decision.EvidenceID, "deny", decision)
}

func (h *httpServerAdapter) Revoke(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return h.postTransition(ctx, decision.EvidenceID, "revoke", decision)
}

func (h *httpServerAdapter) VerifyIntegrity(ctx context.Context, decision models.CustodyDecision) (models.EvidenceItem, error) {
	return h.postTransition(ctx, decision.EvidenceID, "verify", decision)
}

func (h *httpServerAdapter) Unlock(ctx context.Context, evidenceID string) (models.EvidenceItem, error) {
	return h.postTransition(ctx, evidenceID, "unlock", nil)
}

func (h *httpServerAdapter) AuditBlocks(ctx context.Context) ([]models.AuditBlock, error) {
	var blocks []models.AuditBlock
	if err := h.getJSON(ctx, "/api/audit", &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (h *httpServerAdapter) ValidateChain(ctx context.Context) (models.ChainStatus, error) {
	var status models.ChainStatus
	if err := h.getJSON(ctx, "/api/audit/validate", &status); err != nil {
		return models.ChainStatus{}, err
	}
	return status, nil
}

func (h *httpServerAdapter) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := h.getJSON(ctx, "/api/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (h *httpServerAdapter) ListRoster(ctx context.Context) ([]models.FieldWorker, error) {
	var workers []models.FieldWorker
	if err := h.getJSON(ctx, "/api/roster", &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// postTransition runs one custody transition and decodes the updated item.
func (h *httpServerAdapter) postTransition(ctx context.Context, evidenceID, action string, body any) (models.EvidenceItem, error) {
	req := h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post("/api/evidence/" + url.PathEscape(evidenceID) + "/" + action)
	if err != nil {
		return models.EvidenceItem{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EvidenceItem{}, err
	}

	var item models.EvidenceItem
	if err := json.Unmarshal(resp.Body(), &item); err != nil {
		return models.EvidenceItem{}, fmt.Errorf("%s decode response: %w", action, err)
	}
	return item, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
