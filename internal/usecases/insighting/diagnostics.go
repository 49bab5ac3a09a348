package insighting

import (
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/utils"
)

// BuildDiagnostics normalizes raw ad metrics into the canonical diagnostic
// record: currency and ratio fields rounded to two decimals, counters
// defaulted to zero. Missing optional fields coerce silently; the producer
// contract treats absence as zero, not as an error.
func BuildDiagnostics(m *domain.AdMetrics) domain.DiagnosticRecord {
	return domain.DiagnosticRecord{
		Spend:       utils.RoundWithTwoDecimalPlace(m.Spend),
		Revenue:     utils.RoundWithTwoDecimalPlace(m.Revenue),
		ROAS:        utils.RoundWithTwoDecimalPlace(resolveROAS(m)),
		Impressions: intOrZero(m.Impressions),
		Clicks:      intOrZero(m.Clicks),
		Purchases:   intOrZero(m.Purchases),

		CTRPct:            utils.RoundWithTwoDecimalPlace(m.CTR),
		CPC:               utils.RoundWithTwoDecimalPlace(m.CPC),
		HookRatePct:       utils.RoundWithTwoDecimalPlace(m.HookRate),
		HoldRatePct:       utils.RoundWithTwoDecimalPlace(m.HoldRate),
		CompletionRatePct: utils.RoundWithTwoDecimalPlace(m.CompletionRate),
	}
}

// resolveROAS keeps a supplied ROAS; otherwise derives revenue/spend when
// spend is positive, and 0 when it is not.
func resolveROAS(m *domain.AdMetrics) float64 {
	if m.ROAS != nil {
		return *m.ROAS
	}
	if m.Spend > 0 {
		return m.Revenue / m.Spend
	}
	return 0
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
