package insighting

import (
	"context"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

// Insighter generates insight narratives and suggestions for ad metrics.
type Insighter interface {
	// GenerateInsight builds the deterministic rule-based insight.
	GenerateInsight(ctx context.Context, metrics *domain.AdMetrics) (*domain.InsightResult, error)

	// GenerateLLMInsight builds the same diagnostics but delegates the
	// narrative to the external LLM collaborator.
	GenerateLLMInsight(ctx context.Context, metrics *domain.AdMetrics) (*domain.InsightResult, error)
}

// Narrator is the narrow contract to the external LLM collaborator: one
// blocking call, a generated narrative or an error.
type Narrator interface {
	GenerateAdNarrative(ctx context.Context, adName, product, platform string, diag domain.DiagnosticRecord) (string, error)
}
