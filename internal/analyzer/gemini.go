package analyzer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

// sceneInstruction is the fixed judgement task sent with every frame.
const sceneInstruction = `Analyze this surveillance frame for a Smart Waste Security System.
CRITICAL TASK: Detect if a person is CURRENTLY in the act of dumping waste illegally.

1. Look for a human subject throwing trash, bags, or debris onto the ground or an overflowing area.
2. Illegal Dumping is DIFFERENT from a full bin. It requires an ACTOR (Person).
3. Estimate waste level (0-100).
4. Identify other hazards (fire, blocked road).
5. Provide a safety score.
`

const defaultModel = "gemini-2.5-flash"

// geminiAnalyzer is the HTTP implementation of [SceneAnalyzer] for a
// Gemini-style generateContent API.
type geminiAnalyzer struct {
	client *resty.Client
	model  string
	apiKey string

	logger *logger.Logger
}

// generateContentRequest is the wire shape of a generateContent call with an
// inline image part, a text instruction, and a JSON response mime type.
type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// analysisPayload is the JSON document the model is instructed to answer
// with. Timestamp is attached locally.
type analysisPayload struct {
	WasteLevel        int      `json:"wasteLevel"`
	IsDumpingDetected bool     `json:"isDumpingDetected"`
	Hazards           []string `json:"hazards"`
	SafetyScore       int      `json:"safetyScore"`
	Description       string   `json:"description"`
}

// NewGeminiAnalyzer constructs a [SceneAnalyzer] wired to the configured
// generateContent endpoint. Unset config fields fall back to sensible
// defaults (15s timeout, gemini-2.5-flash).
func NewGeminiAnalyzer(cfg config.Analyzer, logger *logger.Logger) SceneAnalyzer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &geminiAnalyzer{
		client: cli,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// Analyze implements [SceneAnalyzer]. It posts the frame inline with the
// fixed instruction and decodes the model's JSON verdict.
//
// Every failure mode (transport error, non-2xx status, malformed body,
// out-of-range values) is returned as an error so the caller can substitute
// the neutral fallback result.
func (g *geminiAnalyzer) Analyze(ctx context.Context, frame models.Frame) (models.AnalysisResult, error) {
	log := logger.FromContext(ctx)

	if frame.Empty() {
		return models.AnalysisResult{}, fmt.Errorf("analyze: empty frame from %q", frame.Source)
	}

	reqBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: "image/jpeg",
					Data:     base64.StdEncoding.EncodeToString(frame.Data),
				}},
				{Text: sceneInstruction},
			},
		}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	}

	var respBody generateContentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(reqBody).
		SetResult(&respBody).
		Post("/v1beta/models/" + g.model + ":generateContent")
	if err != nil {
		log.Err(err).Str("source", frame.Source).Msg("scene analysis request failed")
		return models.AnalysisResult{}, fmt.Errorf("analyze request: %w", err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("source", frame.Source).Msg("scene analysis rejected")
		return models.AnalysisResult{}, fmt.Errorf("analyze: unexpected status %d", resp.StatusCode())
	}

	text, err := firstCandidateText(respBody)
	if err != nil {
		return models.AnalysisResult{}, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Err(err).Msg("scene analysis returned malformed verdict")
		return models.AnalysisResult{}, fmt.Errorf("analyze decode verdict: %w", err)
	}

	if payload.WasteLevel < 0 || payload.WasteLevel > 100 || payload.SafetyScore < 0 || payload.SafetyScore > 100 {
		return models.AnalysisResult{}, fmt.Errorf("analyze: verdict out of range (waste=%d, safety=%d)", payload.WasteLevel, payload.SafetyScore)
	}

	return models.AnalysisResult{
		WasteLevel:        payload.WasteLevel,
		Hazards:           payload.Hazards,
		SafetyScore:       payload.SafetyScore,
		Description:       payload.Description,
		IsDumpingDetected: payload.IsDumpingDetected,
		Timestamp:         time.Now(),
	}, nil
}

func firstCandidateText(resp generateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("analyze: no response text from model")
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("analyze: empty response text from model")
	}
	return text, nil
}
