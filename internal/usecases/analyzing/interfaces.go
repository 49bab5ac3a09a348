package analyzing

import (
	"context"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

// Analyzer exposes the deterministic content-analysis helpers: dominant
// language extraction and product categorization. Both are total; they
// always return a well-formed result.
type Analyzer interface {
	ExtractLanguages(ctx context.Context, analysis map[string]any) *domain.LanguageResult
	CategorizeProduct(ctx context.Context, req *domain.ProductCategorizationRequest) *domain.ProductCategorization
}
