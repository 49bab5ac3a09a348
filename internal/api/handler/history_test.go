package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository/mocks"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
)

func historyEntryFixture() *domain.InsightHistoryEntry {
	return &domain.InsightHistoryEntry{
		ID:          "abc123def456",
		AdName:      "Diwali Push",
		Product:     "Oud Royale EDP",
		Platform:    "Instagram",
		Source:      domain.InsightSourceRule,
		Insight:     "insight text",
		Suggestions: []string{"one", "two"},
		CreatedAt:   time.Now().UTC(),
	}
}

func TestGetInsightHistory(t *testing.T) {
	t.Run("lists recent entries by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
		mockRepo.EXPECT().
			ListRecent(gomock.Any(), defaultHistoryLimit).
			Return([]*domain.InsightHistoryEntry{historyEntryFixture()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/history", nil)
		rec := httptest.NewRecorder()

		GetInsightHistory(mockRepo).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp InsightHistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "Diwali Push", resp.Entries[0].AdName)
	})

	t.Run("filters by ad name and honours the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
		mockRepo.EXPECT().
			ListByAdName(gomock.Any(), "Diwali Push", 5).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/history?ad_name=Diwali+Push&limit=5", nil)
		rec := httptest.NewRecorder()

		GetInsightHistory(mockRepo).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp InsightHistoryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Entries)
	})

	t.Run("limit is capped at the maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
		mockRepo.EXPECT().
			ListRecent(gomock.Any(), maxHistoryLimit).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/history?limit=5000", nil)
		rec := httptest.NewRecorder()

		GetInsightHistory(mockRepo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric limit is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/history?limit=abc", nil)
		rec := httptest.NewRecorder()

		GetInsightHistory(mockRepo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("repository failure maps to a database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
		mockRepo.EXPECT().
			ListRecent(gomock.Any(), defaultHistoryLimit).
			Return(nil, errors.New("connection refused"))

		req := httptest.NewRequest(http.MethodGet, "/v1/insights/history", nil)
		rec := httptest.NewRecorder()

		GetInsightHistory(mockRepo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
	})
}
