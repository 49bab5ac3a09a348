package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository/mocks"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
)

// fakeNarrator is a stub Narrator for exercising the LLM path without the
// external service.
type fakeNarrator struct {
	narrative string
	err       error
	calls     int
}

func (f *fakeNarrator) GenerateAdNarrative(_ context.Context, _, _, _ string, _ domain.DiagnosticRecord) (string, error) {
	f.calls++
	return f.narrative, f.err
}

func testMetrics() *domain.AdMetrics {
	return &domain.AdMetrics{
		AdName:         "Diwali Push",
		Product:        "Oud Royale EDP",
		Platform:       "Instagram",
		Spend:          1000,
		Revenue:        2500,
		CTR:            1.2,
		CPC:            8.5,
		HookRate:       60,
		HoldRate:       12,
		CompletionRate: 9,
	}
}

func TestService_GenerateInsight(t *testing.T) {
	service := NewService(&config.Config{}, nil)

	result, err := service.GenerateInsight(context.Background(), testMetrics())
	require.NoError(t, err)

	assert.Equal(t, 2.5, result.Diagnostics.ROAS)
	assert.Contains(t, result.Insight, "**2.50x ROAS**")
	assert.Len(t, result.Suggestions, DefaultSuggestionCount)
	assert.Contains(t, result.Suggestions[0], "[Context: Product: Oud Royale EDP, Platform: Instagram]")

	parsed, err := time.Parse("2006-01-02T15:04:05.000Z", result.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestService_GenerateInsight_Deterministic(t *testing.T) {
	service := NewService(&config.Config{}, nil)

	first, err := service.GenerateInsight(context.Background(), testMetrics())
	require.NoError(t, err)

	second, err := service.GenerateInsight(context.Background(), testMetrics())
	require.NoError(t, err)

	assert.Equal(t, first.Insight, second.Insight)
	assert.Equal(t, first.Suggestions, second.Suggestions)
}

func TestService_GenerateInsight_PersistsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)

	var saved *domain.InsightHistoryEntry
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.InsightHistoryEntry) error {
			saved = entry
			return nil
		})

	service := NewService(&config.Config{}, nil).(*Service).WithHistory(mockRepo)

	result, err := service.GenerateInsight(context.Background(), testMetrics())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "Diwali Push", saved.AdName)
	assert.Equal(t, domain.InsightSourceRule, saved.Source)
	assert.Equal(t, result.Insight, saved.Insight)
	assert.Equal(t, result.Suggestions, saved.Suggestions)
}

func TestService_GenerateInsight_HistoryFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("database unavailable"))

	service := NewService(&config.Config{}, nil).(*Service).WithHistory(mockRepo)

	result, err := service.GenerateInsight(context.Background(), testMetrics())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Insight)
}

func TestService_GenerateLLMInsight(t *testing.T) {
	tests := []struct {
		name     string
		narrator *fakeNarrator
		wantErr  bool
		validate func(t *testing.T, result *domain.InsightResult)
	}{
		{
			name:     "uses the narrator narrative verbatim",
			narrator: &fakeNarrator{narrative: "The Diwali Push campaign is scaling well."},
			validate: func(t *testing.T, result *domain.InsightResult) {
				assert.Equal(t, "The Diwali Push campaign is scaling well.", result.Insight)
				assert.Len(t, result.Suggestions, DefaultSuggestionCount)
				assert.Equal(t, 2.5, result.Diagnostics.ROAS)
			},
		},
		{
			name:     "narrator failure surfaces without a partial result",
			narrator: &fakeNarrator{err: errors.New("upstream timeout")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(&config.Config{}, tt.narrator)

			result, err := service.GenerateLLMInsight(context.Background(), testMetrics())
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, tt.narrator.calls)
			tt.validate(t, result)
		})
	}
}

func TestService_GenerateLLMInsight_NilNarrator(t *testing.T) {
	service := NewService(&config.Config{}, nil)

	result, err := service.GenerateLLMInsight(context.Background(), testMetrics())
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestService_GenerateLLMInsight_PersistsWithLLMSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)

	var saved *domain.InsightHistoryEntry
	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.InsightHistoryEntry) error {
			saved = entry
			return nil
		})

	narrator := &fakeNarrator{narrative: "Generated narrative."}
	service := NewService(&config.Config{}, narrator).(*Service).WithHistory(mockRepo)

	_, err := service.GenerateLLMInsight(context.Background(), testMetrics())
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, domain.InsightSourceLLM, saved.Source)
}
