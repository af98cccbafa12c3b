// Package analyzer provides the scene analyzer abstraction: an external
// multimodal model that judges a single surveillance frame for waste
// saturation, hazards, and active illegal dumping.
//
// The package ships an HTTP implementation ([NewGeminiAnalyzer]) for a
// Gemini-style generateContent endpoint. Callers must treat analyzer
// failures as recoverable: the capture pipeline substitutes
// [models.FallbackAnalysisResult] instead of propagating the error.
package analyzer

import (
	"context"

	"github.com/verdantlabs/wastesentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/scene_analyzer_mock.go -package=mock

// SceneAnalyzer judges one raw frame and returns the structured result.
//
// Implementations must honor ctx cancellation: the sentry loop discards
// results that arrive after the feed was stopped, and a hung analyzer call
// must not outlive its caller.
type SceneAnalyzer interface {
	Analyze(ctx context.Context, frame models.Frame) (models.AnalysisResult, error)
}
