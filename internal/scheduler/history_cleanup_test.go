package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository/mocks"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
)

func cleanupTestConfig(enabled bool) *config.Config {
	return &config.Config{
		HistoryCleanup: config.HistoryCleanup{
			CronSchedule:  "0 3 * * *",
			RetentionDays: 90,
			Enabled:       enabled,
		},
	}
}

func TestHistoryCleanupService_RunCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
	mockRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 90).
		Return(int64(12), nil)

	service := NewHistoryCleanupService(mockRepo, cleanupTestConfig(true))

	service.runCleanup(context.Background())

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, 90, status.RetentionDays)
	assert.False(t, status.Running)
	assert.Equal(t, int64(12), status.LastRunDeleted)
	assert.NotNil(t, status.LastRunStartedAt)
	assert.NotNil(t, status.LastRunCompletedAt)
}

func TestHistoryCleanupService_RunCleanup_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
	mockRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 90).
		Return(int64(0), errors.New("database unavailable"))

	service := NewHistoryCleanupService(mockRepo, cleanupTestConfig(true))

	service.runCleanup(context.Background())

	status := service.Status()
	assert.Equal(t, int64(0), status.LastRunDeleted)
	assert.False(t, status.Running)
}

func TestHistoryCleanupService_TriggerManualRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seen := make(chan context.Context, 1)

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)
	mockRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 90).
		DoAndReturn(func(ctx context.Context, _ int) (int64, error) {
			seen <- ctx
			return int64(3), nil
		})

	service := NewHistoryCleanupService(mockRepo, cleanupTestConfig(true))

	service.TriggerManualRun()

	select {
	case runCtx := <-seen:
		// The detached run must not carry a cancelled caller context.
		assert.NoError(t, runCtx.Err())
	case <-time.After(2 * time.Second):
		t.Fatal("manual cleanup run was not dispatched")
	}

	assert.Eventually(t, func() bool {
		status := service.Status()
		return status.LastRunDeleted == int64(3) && !status.Running
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHistoryCleanupService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)

	service := NewHistoryCleanupService(mockRepo, cleanupTestConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No cron job is scheduled and the repository is never touched.
	assert.NoError(t, service.Start(ctx))
}

func TestHistoryCleanupService_StatusBeforeFirstRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockInsightHistoryRepository(ctrl)

	service := NewHistoryCleanupService(mockRepo, cleanupTestConfig(true))

	status := service.Status()
	assert.Nil(t, status.LastRunStartedAt)
	assert.Nil(t, status.LastRunCompletedAt)
	assert.False(t, status.Running)
}
