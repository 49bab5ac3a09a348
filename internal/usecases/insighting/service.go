package insighting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/log"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/utils"
)

// timestampLayout is UTC ISO-8601 with millisecond precision and a literal
// "Z" suffix, matching what downstream dashboards parse.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Service implements Insighter over the deterministic rule engine and the
// optional LLM collaborator.
type Service struct {
	cfg         *config.Config
	narrator    Narrator
	historyRepo repository.InsightHistoryRepository
}

// NewService creates the insight service. narrator may be nil when the LLM
// collaborator is not configured; the rule-based path works without it.
func NewService(cfg *config.Config, narrator Narrator) Insighter {
	return &Service{
		cfg:      cfg,
		narrator: narrator,
	}
}

// WithHistory enables best-effort persistence of generated insights.
func (s *Service) WithHistory(historyRepo repository.InsightHistoryRepository) *Service {
	s.historyRepo = historyRepo
	return s
}

// GenerateInsight builds the deterministic insight: diagnostics, narrative,
// bottleneck classification and the seeded suggestion selection.
func (s *Service) GenerateInsight(ctx context.Context, metrics *domain.AdMetrics) (*domain.InsightResult, error) {
	adName := metrics.DisplayName()
	diag := BuildDiagnostics(metrics)

	result := &domain.InsightResult{
		Insight:     BuildNarrative(adName, metrics.Product, metrics.Platform, diag),
		Suggestions: s.pickSuggestions(adName, metrics.Product, metrics.Platform),
		Diagnostics: diag,
		Timestamp:   time.Now().UTC().Format(timestampLayout),
	}

	s.recordHistory(ctx, metrics, result, domain.InsightSourceRule)

	return result, nil
}

// GenerateLLMInsight builds the same diagnostics and suggestions but asks
// the external LLM collaborator for the narrative. Single attempt; a failure
// surfaces to the caller without a partial result.
func (s *Service) GenerateLLMInsight(ctx context.Context, metrics *domain.AdMetrics) (*domain.InsightResult, error) {
	if s.narrator == nil {
		return nil, errors.New("LLM narrator is not configured")
	}

	adName := metrics.DisplayName()
	diag := BuildDiagnostics(metrics)

	narrative, err := s.narrator.GenerateAdNarrative(ctx, adName, metrics.Product, metrics.Platform, diag)
	if err != nil {
		return nil, errors.Wrap(err, "generating LLM narrative")
	}

	result := &domain.InsightResult{
		Insight:     narrative,
		Suggestions: s.pickSuggestions(adName, metrics.Product, metrics.Platform),
		Diagnostics: diag,
		Timestamp:   time.Now().UTC().Format(timestampLayout),
	}

	s.recordHistory(ctx, metrics, result, domain.InsightSourceLLM)

	return result, nil
}

// pickSuggestions runs the seeded selection and applies the context
// annotation. Same ad name, same selection, across restarts.
func (s *Service) pickSuggestions(adName, product, platform string) []string {
	seed := SeedFromText(adName)
	selected := SelectSuggestions(seed, SuggestionCatalog(), DefaultSuggestionCount)
	return annotateContext(selected, product, platform)
}

// recordHistory persists the generated insight for auditing. Failures are
// logged and never fail the request; the insight itself is request-scoped.
func (s *Service) recordHistory(ctx context.Context, metrics *domain.AdMetrics, result *domain.InsightResult, source string) {
	if s.historyRepo == nil {
		return
	}

	logger := log.ForContext(ctx)

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("insights: could not generate history entry ID")
		return
	}

	entry := &domain.InsightHistoryEntry{
		ID:          id,
		AdName:      metrics.DisplayName(),
		Product:     metrics.Product,
		Platform:    metrics.Platform,
		Source:      source,
		Insight:     result.Insight,
		Suggestions: result.Suggestions,
		Diagnostics: result.Diagnostics,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.historyRepo.Save(ctx, entry); err != nil {
		logger.WithError(err).WithField("ad_name", entry.AdName).
			Warn("insights: failed to persist insight history entry")
	}
}
