package models

// CaptureOutcome reports the result of one capture pipeline run.
//
// Analysis is always populated (the fallback result on analyzer failure).
// Evidence is non-nil only when the detection gate passed and an item was
// vaulted; Alert is non-nil only when active dumping triggered a
// notification.
type CaptureOutcome struct {
	Analysis AnalysisResult `json:"analysis"`
	Evidence *EvidenceItem  `json:"evidence,omitempty"`
	Alert    *Alert         `json:"alert,omitempty"`
}

// ChainStatus is the audit chain diagnostic returned by the validate
// endpoint. A broken chain is reported, never auto-repaired.
type ChainStatus struct {
	Valid  bool `json:"valid"`
	Length int  `json:"length"`
}

// SentryStatus describes the autonomous capture controller.
type SentryStatus struct {
	// State is one of "idle", "armed", "scanning".
	State string `json:"state"`

	// TicksObserved counts scan ticks since the loop was last started.
	TicksObserved int `json:"ticks_observed"`
}
