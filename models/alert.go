package models

import "time"

// Alert type classifiers.
const (
	AlertTypeWaste  = "waste"
	AlertTypeSafety = "safety"
	AlertTypeFire   = "fire"
	AlertTypeRoad   = "road"
)

// Alert severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert is a notification surfaced on the operations dashboard.
// Alerts are append-only and never mutated after creation; the alert feed
// keeps them newest-first.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Location  string    `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}
