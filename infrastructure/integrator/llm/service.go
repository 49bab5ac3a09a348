package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/integrator/llm/llmclient"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/internal/prompts"
)

// LLMIntegrator turns ad diagnostics into a prompt for the external LLM and
// returns its narrative.
type LLMIntegrator struct {
	cfg    *config.Config
	client llmclient.Client
}

func New(cfg *config.Config, client llmclient.Client) *LLMIntegrator {
	return &LLMIntegrator{
		cfg:    cfg,
		client: client,
	}
}

// GenerateAdNarrative renders the diagnostics into the templated user prompt
// and performs the single blocking completion call.
func (i *LLMIntegrator) GenerateAdNarrative(ctx context.Context, adName, product, platform string, diag domain.DiagnosticRecord) (string, error) {
	userPrompt := buildUserPrompt(adName, product, platform, diag)

	narrative, err := i.client.Complete(ctx, prompts.AdInsightSystem, userPrompt)
	if err != nil {
		return "", errors.Wrap(err, "LLM completion failed")
	}

	return strings.TrimSpace(narrative), nil
}

func buildUserPrompt(adName, product, platform string, diag domain.DiagnosticRecord) string {
	if product == "" {
		product = "Product"
	}
	if platform == "" {
		platform = "Platform"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ad: %s\nProduct: %s\nPlatform: %s\n\n", adName, product, platform)
	fmt.Fprintf(&b, "Diagnostics:\n")
	fmt.Fprintf(&b, "- Spend: ₹%.2f\n", diag.Spend)
	fmt.Fprintf(&b, "- Revenue: ₹%.2f\n", diag.Revenue)
	fmt.Fprintf(&b, "- ROAS: %.2fx\n", diag.ROAS)
	fmt.Fprintf(&b, "- Impressions: %d, Clicks: %d, Purchases: %d\n", diag.Impressions, diag.Clicks, diag.Purchases)
	fmt.Fprintf(&b, "- CTR: %.2f%%, CPC: ₹%.2f\n", diag.CTRPct, diag.CPC)
	fmt.Fprintf(&b, "- Hook rate: %.1f%%, Hold rate: %.1f%%, Completion rate: %.1f%%\n", diag.HookRatePct, diag.HoldRatePct, diag.CompletionRatePct)
	fmt.Fprintf(&b, "\nWrite the insight narrative for this ad.")

	return b.String()
}
