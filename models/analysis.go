package models

import "time"

// AnalysisResult is the structured judgement returned by the scene analyzer
// for a single surveillance frame.
//
// The analyzer is an external multimodal model; this struct mirrors the JSON
// schema it is instructed to respond with. Once attached to an evidence item
// the result is immutable.
type AnalysisResult struct {
	// WasteLevel estimates how full trash bins or dumping areas are, 0-100.
	WasteLevel int `json:"wasteLevel"`

	// Hazards lists detected hazards, e.g. "Illegal Dumping In Progress",
	// "Fire", "Blocked Road", or "None".
	Hazards []string `json:"hazards"`

	// SafetyScore estimates overall scene safety, 0-100.
	SafetyScore int `json:"safetyScore"`

	// Description is a concise free-text summary of the scene.
	Description string `json:"description"`

	// IsDumpingDetected is true only when a person is visible in the act of
	// dumping waste. A full bin alone does not set this flag.
	IsDumpingDetected bool `json:"isDumpingDetected"`

	// Timestamp records when the analysis was produced.
	Timestamp time.Time `json:"timestamp"`
}

// FallbackAnalysisResult returns the neutral result substituted whenever the
// scene analyzer fails or responds with malformed output. Analyzer failure is
// never allowed to propagate into the capture pipeline.
func FallbackAnalysisResult() AnalysisResult {
	return AnalysisResult{
		WasteLevel:        0,
		Hazards:           []string{"Analysis Error"},
		SafetyScore:       50,
		Description:       "Could not analyze image. Please try again.",
		IsDumpingDetected: false,
		Timestamp:         time.Now(),
	}
}
