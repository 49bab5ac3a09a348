package insighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

func TestIdentifyPrimaryBottleneck(t *testing.T) {
	tests := []struct {
		name string
		diag domain.DiagnosticRecord
		want string
	}{
		{
			name: "critical retention wins",
			diag: domain.DiagnosticRecord{HoldRatePct: 5.9, CompletionRatePct: 4.9, CTRPct: 1.0, ROAS: 3.0},
			want: bottleneckRetention,
		},
		{
			name: "weak hook when retention holds up",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 49.9, CTRPct: 0.49, ROAS: 3.0},
			want: bottleneckHook,
		},
		{
			name: "conversion bottleneck on traffic with poor ROAS",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 60, CTRPct: 1.2, ROAS: 0.8, Clicks: 51},
			want: bottleneckConversion,
		},
		{
			name: "traffic challenge on low CTR with good hook",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 60, CTRPct: 0.4, ROAS: 3.0},
			want: bottleneckTraffic,
		},
		{
			name: "moderate at ROAS lower boundary",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 60, CTRPct: 1.0, ROAS: 1.0},
			want: bottleneckModerate,
		},
		{
			name: "moderate just below upper boundary",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 60, CTRPct: 1.0, ROAS: 2.49},
			want: bottleneckModerate,
		},
		{
			name: "strong at ROAS 2.5",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 60, CTRPct: 1.0, ROAS: 2.5},
			want: bottleneckStrong,
		},
		{
			// hold=4, completion=3 also match the hook rule's inputs
			// (hook=40, ctr=0.3); the retention rule must win because it
			// is evaluated first.
			name: "overlapping metrics resolve by rule order",
			diag: domain.DiagnosticRecord{HoldRatePct: 4, CompletionRatePct: 3, HookRatePct: 40, CTRPct: 0.3, ROAS: 0.5, Clicks: 100},
			want: bottleneckRetention,
		},
		{
			name: "conversion rule needs more than 50 clicks",
			diag: domain.DiagnosticRecord{HoldRatePct: 10, CompletionRatePct: 8, HookRatePct: 60, CTRPct: 1.0, ROAS: 0.8, Clicks: 50},
			want: bottleneckStrong,
		},
		{
			name: "retention needs both hold and completion low",
			diag: domain.DiagnosticRecord{HoldRatePct: 5.0, CompletionRatePct: 5.0, HookRatePct: 60, CTRPct: 1.0, ROAS: 3.0},
			want: bottleneckStrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentifyPrimaryBottleneck(tt.diag))
		})
	}
}
