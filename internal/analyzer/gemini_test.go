package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

const testEndpoint = "https://analyzer.test/v1beta/models/gemini-2.5-flash:generateContent"

func newTestAnalyzer(t *testing.T) *geminiAnalyzer {
	t.Helper()

	a := NewGeminiAnalyzer(config.Analyzer{
		BaseURL: "https://analyzer.test",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, logger.Nop())

	ga, ok := a.(*geminiAnalyzer)
	require.True(t, ok)

	httpmock.ActivateNonDefault(ga.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return ga
}

func testFrame() models.Frame {
	return models.Frame{
		Data:       []byte("jpeg-bytes"),
		Source:     "Camera 01 - Main St",
		CapturedAt: time.Now(),
	}
}

func verdictResponder(verdict string) httpmock.Responder {
	return httpmock.NewJsonResponderOrPanic(200, map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": verdict}},
			},
		}},
	})
}

func TestGeminiAnalyzer_Analyze_Success(t *testing.T) {
	ga := newTestAnalyzer(t)
	httpmock.RegisterResponder("POST", testEndpoint, verdictResponder(
		`{"wasteLevel": 85, "isDumpingDetected": true, "hazards": ["Illegal Dumping In Progress"], "safetyScore": 30, "description": "Person caught dumping bags."}`,
	))

	result, err := ga.Analyze(context.Background(), testFrame())
	require.NoError(t, err)

	assert.Equal(t, 85, result.WasteLevel)
	assert.True(t, result.IsDumpingDetected)
	assert.Equal(t, []string{"Illegal Dumping In Progress"}, result.Hazards)
	assert.Equal(t, 30, result.SafetyScore)
	assert.False(t, result.Timestamp.IsZero())
}

func TestGeminiAnalyzer_Analyze_ServerError(t *testing.T) {
	ga := newTestAnalyzer(t)
	httpmock.RegisterResponder("POST", testEndpoint,
		httpmock.NewStringResponder(500, "internal error"))

	_, err := ga.Analyze(context.Background(), testFrame())
	assert.Error(t, err)
}

func TestGeminiAnalyzer_Analyze_MalformedVerdict(t *testing.T) {
	ga := newTestAnalyzer(t)
	httpmock.RegisterResponder("POST", testEndpoint, verdictResponder(`not json at all`))

	_, err := ga.Analyze(context.Background(), testFrame())
	assert.Error(t, err)
}

func TestGeminiAnalyzer_Analyze_NoCandidates(t *testing.T) {
	ga := newTestAnalyzer(t)
	httpmock.RegisterResponder("POST", testEndpoint,
		httpmock.NewJsonResponderOrPanic(200, map[string]any{"candidates": []any{}}))

	_, err := ga.Analyze(context.Background(), testFrame())
	assert.Error(t, err)
}

func TestGeminiAnalyzer_Analyze_VerdictOutOfRange(t *testing.T) {
	ga := newTestAnalyzer(t)
	httpmock.RegisterResponder("POST", testEndpoint, verdictResponder(
		`{"wasteLevel": 250, "isDumpingDetected": false, "hazards": [], "safetyScore": 70, "description": "x"}`,
	))

	_, err := ga.Analyze(context.Background(), testFrame())
	assert.Error(t, err)
}

func TestGeminiAnalyzer_Analyze_EmptyFrame(t *testing.T) {
	ga := newTestAnalyzer(t)

	_, err := ga.Analyze(context.Background(), models.Frame{Source: "upload"})
	assert.Error(t, err)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestFallbackAnalysisResult_NeutralValues(t *testing.T) {
	fb := models.FallbackAnalysisResult()

	assert.Equal(t, 0, fb.WasteLevel)
	assert.False(t, fb.IsDumpingDetected)
	assert.Equal(t, []string{"Analysis Error"}, fb.Hazards)
	assert.Equal(t, 50, fb.SafetyScore)
}
