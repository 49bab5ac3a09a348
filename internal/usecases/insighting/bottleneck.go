package insighting

import "github.com/kenazlabs/kenaz-analytics-api/internal/domain"

// Bottleneck narratives. These strings are contract constants consumed by
// reporting dashboards; keep the wording stable.
const (
	bottleneckRetention = "Critical viewer retention issue — very low hold and completion rates indicate viewers drop off quickly before conversion. Prioritize engaging content in the first 5-10 seconds and mid-video storytelling."

	bottleneckHook = "Weak initial hook — low hook rate and CTR suggest the opening frame/first 3 seconds aren't compelling enough. Test stronger visual hooks, clearer value propositions, and improved thumbnails."

	bottleneckConversion = "Conversion bottleneck — decent traffic but poor ROAS indicates landing page or offer misalignment. Review product-message fit, landing page load speed, checkout friction, and pricing clarity."

	bottleneckTraffic = "Traffic generation challenge — low CTR suggests the ad isn't resonating with the target audience. Test different audience segments, creative formats, and messaging angles."

	bottleneckModerate = "Moderate performance — ROAS is positive but has optimization potential. Focus on incremental improvements: creative iteration, audience refinement, and funnel optimization."

	bottleneckStrong = "Strong baseline performance — ad shows healthy metrics across the funnel. Focus on scaling winning elements, testing new creative variations, and exploring expansion audiences."
)

// IdentifyPrimaryBottleneck classifies the weakest funnel stage. The rules
// form an ordered decision list; they overlap, so the first match wins.
func IdentifyPrimaryBottleneck(diag domain.DiagnosticRecord) string {
	if diag.HoldRatePct < 6.0 && diag.CompletionRatePct < 5.0 {
		return bottleneckRetention
	}

	if diag.HookRatePct < 50.0 && diag.CTRPct < 0.5 {
		return bottleneckHook
	}

	if diag.ROAS < 1.0 && diag.Clicks > 50 {
		return bottleneckConversion
	}

	if diag.CTRPct < 0.5 {
		return bottleneckTraffic
	}

	if diag.ROAS >= 1.0 && diag.ROAS < 2.5 {
		return bottleneckModerate
	}

	return bottleneckStrong
}
