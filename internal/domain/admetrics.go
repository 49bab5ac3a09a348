package domain

import (
	"fmt"
	"strings"
)

// AdMetrics is the raw ad-performance payload posted by reporting producers.
// Optional numeric fields default to zero when absent; that leniency is part
// of the producer contract and is not treated as an error.
type AdMetrics struct {
	AdName   string `json:"ad_name"`
	Name     string `json:"name,omitempty"`
	Product  string `json:"product,omitempty"`
	Platform string `json:"platform,omitempty"`

	Spend   float64  `json:"spend"`
	Revenue float64  `json:"revenue"`
	ROAS    *float64 `json:"roas,omitempty"`

	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	HookRate       float64 `json:"hook_rate"`
	HoldRate       float64 `json:"hold_rate"`
	CompletionRate float64 `json:"completion_rate"`

	Impressions *int `json:"impressions,omitempty"`
	Clicks      *int `json:"clicks,omitempty"`
	Purchases   *int `json:"purchases,omitempty"`

	Extra map[string]any `json:"extra,omitempty"`
}

// DisplayName resolves the ad name, accepting "name" as a legacy alias for
// "ad_name".
func (m *AdMetrics) DisplayName() string {
	if m.AdName != "" {
		return m.AdName
	}
	return m.Name
}

// Validate checks the boundary constraints on the payload.
func (m *AdMetrics) Validate() error {
	name := strings.TrimSpace(m.DisplayName())
	if name == "" {
		return fmt.Errorf("ad_name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("ad_name must be at most 200 characters")
	}

	if m.Spend < 0 || m.Revenue < 0 || m.CPC < 0 {
		return fmt.Errorf("spend, revenue and cpc must be non-negative")
	}
	if m.ROAS != nil && *m.ROAS < 0 {
		return fmt.Errorf("roas must be non-negative")
	}

	for field, pct := range map[string]float64{
		"ctr":             m.CTR,
		"hook_rate":       m.HookRate,
		"hold_rate":       m.HoldRate,
		"completion_rate": m.CompletionRate,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%s must be between 0 and 100", field)
		}
	}

	for field, count := range map[string]*int{
		"impressions": m.Impressions,
		"clicks":      m.Clicks,
		"purchases":   m.Purchases,
	} {
		if count != nil && *count < 0 {
			return fmt.Errorf("%s must be non-negative", field)
		}
	}

	return nil
}

// DiagnosticRecord is the normalized view of AdMetrics: currency and ratio
// fields rounded to two decimals, counters defaulted to zero. Built fresh per
// request and never mutated afterwards.
type DiagnosticRecord struct {
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	ROAS        float64 `json:"roas"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Purchases   int     `json:"purchases"`

	CTRPct            float64 `json:"ctr_pct"`
	CPC               float64 `json:"cpc"`
	HookRatePct       float64 `json:"hook_rate_pct"`
	HoldRatePct       float64 `json:"hold_rate_pct"`
	CompletionRatePct float64 `json:"completion_rate_pct"`
}

// InsightResult is the response body for insight generation.
type InsightResult struct {
	Insight     string           `json:"insight"`
	Suggestions []string         `json:"suggestions"`
	Diagnostics DiagnosticRecord `json:"diagnostics"`
	Timestamp   string           `json:"timestamp"`
}
