package insighting

import (
	"fmt"
	"strings"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/utils"
)

// BuildNarrative assembles the three-segment insight text: headline,
// engagement summary, and the bottleneck line. Segments are joined with
// single spaces; the bottleneck line carries its own leading line break.
func BuildNarrative(adName, product, platform string, diag domain.DiagnosticRecord) string {
	productDisplay := product
	if productDisplay == "" {
		productDisplay = "Product"
	}

	platformDisplay := platform
	if platformDisplay == "" {
		platformDisplay = "Platform"
	}

	parts := []string{
		fmt.Sprintf(
			"**%s** promoting %s on %s achieved **%.2fx ROAS** with ₹%s spend generating ₹%s revenue.",
			adName,
			productDisplay,
			platformDisplay,
			diag.ROAS,
			utils.FormatGrouped(diag.Spend),
			utils.FormatGrouped(diag.Revenue),
		),
		fmt.Sprintf(
			"Engagement: **%.2f%% CTR** (₹%.2f CPC), **%.1f%% hook rate**, **%.1f%% hold rate**, **%.1f%% completion**.",
			diag.CTRPct,
			diag.CPC,
			diag.HookRatePct,
			diag.HoldRatePct,
			diag.CompletionRatePct,
		),
		fmt.Sprintf("\n**Primary Bottleneck:** %s", IdentifyPrimaryBottleneck(diag)),
	}

	return strings.Join(parts, " ")
}

// annotateContext appends the bracketed product/platform annotation to the
// first suggestion when either field is present.
func annotateContext(suggestions []string, product, platform string) []string {
	if len(suggestions) == 0 {
		return suggestions
	}

	contextParts := make([]string, 0, 2)
	if product != "" {
		contextParts = append(contextParts, fmt.Sprintf("Product: %s", product))
	}
	if platform != "" {
		contextParts = append(contextParts, fmt.Sprintf("Platform: %s", platform))
	}

	if len(contextParts) == 0 {
		return suggestions
	}

	suggestions[0] = fmt.Sprintf("%s [Context: %s]", suggestions[0], strings.Join(contextParts, ", "))
	return suggestions
}
