package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
)

// HistoryCleanupConfig holds the retention job settings.
type HistoryCleanupConfig struct {
	CronSchedule  string
	RetentionDays int
	Enabled       bool
}

// HistoryCleanupStatus is a point-in-time snapshot of the retention job.
type HistoryCleanupStatus struct {
	Enabled            bool       `json:"enabled"`
	CronSchedule       string     `json:"cron_schedule"`
	RetentionDays      int        `json:"retention_days"`
	Running            bool       `json:"running"`
	LastRunStartedAt   *time.Time `json:"last_run_started_at,omitempty"`
	LastRunCompletedAt *time.Time `json:"last_run_completed_at,omitempty"`
	LastRunDeleted     int64      `json:"last_run_deleted"`
}

// HistoryCleanupService deletes insight history entries older than the
// configured retention window on a cron schedule.
type HistoryCleanupService struct {
	scheduler          *gocron.Scheduler
	config             HistoryCleanupConfig
	historyRepo        repository.InsightHistoryRepository
	cleanupRunning     bool
	cleanupMutex       sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

func NewHistoryCleanupService(
	historyRepo repository.InsightHistoryRepository,
	appConfig *config.Config,
) *HistoryCleanupService {
	cleanupConfig := HistoryCleanupConfig{
		CronSchedule:  appConfig.HistoryCleanup.CronSchedule,
		RetentionDays: appConfig.HistoryCleanup.RetentionDays,
		Enabled:       appConfig.HistoryCleanup.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  cleanupConfig.CronSchedule,
		"retention_days": cleanupConfig.RetentionDays,
		"enabled":        cleanupConfig.Enabled,
	}).Info("History cleanup scheduler configuration loaded")

	return &HistoryCleanupService{
		scheduler:   scheduler,
		config:      cleanupConfig,
		historyRepo: historyRepo,
	}
}

// Start schedules the cleanup job and stops it when the context is done.
func (s *HistoryCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("History cleanup disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting history cleanup scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCleanup(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling history cleanup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping history cleanup scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualRun runs the cleanup immediately, outside the cron schedule.
// The run is detached from the caller: a request context would be cancelled
// as soon as the triggering handler returns.
func (s *HistoryCleanupService) TriggerManualRun() {
	go s.runCleanup(context.Background())
}

// Status reports the current state of the retention job.
func (s *HistoryCleanupService) Status() HistoryCleanupStatus {
	s.cleanupMutex.Lock()
	defer s.cleanupMutex.Unlock()

	status := HistoryCleanupStatus{
		Enabled:        s.config.Enabled,
		CronSchedule:   s.config.CronSchedule,
		RetentionDays:  s.config.RetentionDays,
		Running:        s.cleanupRunning,
		LastRunDeleted: s.lastRunDeleted,
	}

	if !s.lastRunStartedAt.IsZero() {
		startedAt := s.lastRunStartedAt
		status.LastRunStartedAt = &startedAt
	}
	if !s.lastRunCompletedAt.IsZero() {
		completedAt := s.lastRunCompletedAt
		status.LastRunCompletedAt = &completedAt
	}

	return status
}

func (s *HistoryCleanupService) runCleanup(ctx context.Context) {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("History cleanup already in progress, skipping")
		return
	}
	s.cleanupRunning = true
	s.lastRunStartedAt = time.Now()
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.lastRunCompletedAt = time.Now()
		s.cleanupMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.RetentionDays).Info("Starting insight history cleanup")

	deleted, err := s.historyRepo.DeleteOlderThan(ctx, s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Insight history cleanup failed")
		return
	}

	s.cleanupMutex.Lock()
	s.lastRunDeleted = deleted
	s.cleanupMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"deleted":        deleted,
		"retention_days": s.config.RetentionDays,
	}).Info("Insight history cleanup completed")
}
