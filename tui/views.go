package tui

import (
	"time"
)

// StatusView represents the status output data.
type StatusView struct {
	Version    string               `json:"version"`
	Database   DatabaseView         `json:"database"`
	Classifier ClassifierStatusView `json:"classifier"`
	Config     ConfigStatusView     `json:"config"`
}

// DatabaseView represents database information.
type DatabaseView struct {
	Location    string    `json:"location"`
	SizeBytes   int64     `json:"size_bytes"`
	SizeHuman   string    `json:"size_human"`
	CheckCount  int       `json:"check_count"`
	OldestCheck time.Time `json:"oldest_check,omitempty"`
	NewestCheck time.Time `json:"newest_check,omitempty"`
}

// ClassifierStatusView represents the classifier configuration status.
type ClassifierStatusView struct {
	Enabled  bool   `json:"enabled"`
	Endpoint string `json:"endpoint,omitempty"`
	Model    string `json:"model,omitempty"`
}

// ConfigStatusView represents configuration status.
type ConfigStatusView struct {
	Location        string    `json:"location"`
	RetentionDays   int       `json:"retention_days"`
	ChecksToClean   int       `json:"checks_to_clean"`   // Checks that would be deleted by retention policy
	RetentionCutoff time.Time `json:"retention_cutoff"` // The cutoff date for retention
}

// CheckView represents a check record for display.
type CheckView struct {
	ID             string    `json:"id"`
	ShortID        string    `json:"short_id"`
	Timestamp      time.Time `json:"timestamp"`
	Direction      string    `json:"direction"`
	RiskScore      float64   `json:"risk_score"`
	RiskBand       string    `json:"risk_band"`
	Passed         bool      `json:"passed"`
	Blocked        bool      `json:"blocked"`
	RequiresReview bool      `json:"requires_review"`
	Sender         string    `json:"sender,omitempty"`
	Subject        string    `json:"subject,omitempty"`
	Technique      string    `json:"technique,omitempty"`
	PatternCount   int       `json:"pattern_count"`
	DurationMs     int64     `json:"duration_ms"`
}

// CheckDetailView represents full details of a single check for display.
type CheckDetailView struct {
	CheckView
	BlockReason    string   `json:"block_reason,omitempty"`
	ContentHash    string   `json:"content_hash,omitempty"`
	PatternKinds   []string `json:"pattern_kinds,omitempty"`
	ViolationKinds []string `json:"violation_kinds,omitempty"`
	Prompt         string   `json:"prompt,omitempty"`
}

// ViolationView represents a single output violation for display.
type ViolationView struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// OutputCheckView represents an output validation result for display.
type OutputCheckView struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	Passed         bool            `json:"passed"`
	RequiresReview bool            `json:"requires_review"`
	RiskScore      float64         `json:"risk_score"`
	Violations     []ViolationView `json:"violations,omitempty"`
	SafeContent    string          `json:"safe_content,omitempty"`
	DurationMs     int64           `json:"duration_ms"`
}

// StatsView represents aggregated check statistics for display.
type StatsView struct {
	TotalChecks    int            `json:"total_checks"`
	Passed         int            `json:"passed"`
	Blocked        int            `json:"blocked"`
	RequiresReview int            `json:"requires_review"`
	ByBand         map[string]int `json:"by_band"`
	ByDirection    map[string]int `json:"by_direction"`
	AvgRiskScore   float64        `json:"avg_risk_score"`
	OldestCheck    time.Time      `json:"oldest_check,omitempty"`
	NewestCheck    time.Time      `json:"newest_check,omitempty"`
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location"`
	Values   map[string]interface{} `json:"values"`
}

// DiffView represents a sanitizer diff for display.
type DiffView struct {
	CheckID   string    `json:"check_id"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
	Available bool      `json:"available"`
	Message   string    `json:"message,omitempty"`
}
