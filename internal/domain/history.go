package domain

import "time"

// Insight sources recorded in history entries.
const (
	InsightSourceRule = "rule"
	InsightSourceLLM  = "llm"
)

// InsightHistoryEntry is a generated insight persisted for auditing. The API
// response itself is request-scoped; history is written best-effort after the
// response is built.
type InsightHistoryEntry struct {
	ID          string           `json:"id"`
	AdName      string           `json:"ad_name"`
	Product     string           `json:"product,omitempty"`
	Platform    string           `json:"platform,omitempty"`
	Source      string           `json:"source"`
	Insight     string           `json:"insight"`
	Suggestions []string         `json:"suggestions"`
	Diagnostics DiagnosticRecord `json:"diagnostics"`
	CreatedAt   time.Time        `json:"created_at"`
}
