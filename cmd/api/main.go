package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/database/postgres"
	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/integrator/llm"
	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/integrator/llm/llmclient"
	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository"
	"github.com/kenazlabs/kenaz-analytics-api/internal/api"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/scheduler"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/analyzing"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/authenticating"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	historyRepo := repository.NewInsightHistoryRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	// The LLM collaborator is optional. Without an API key the rule-based
	// endpoint still works; only /v1/insights/ad/llm returns an error.
	var narrator insighting.Narrator
	if cfg.LLM.APIKey != "" {
		narrator = llm.New(cfg, llmclient.NewClient(cfg))
	} else {
		logrus.Warn("LLM_API_KEY not set, LLM insight endpoint will be unavailable")
	}

	insightService := insighting.NewService(cfg, narrator)
	persistedInsightService := insightService.(*insighting.Service).WithHistory(historyRepo)

	analysisService := analyzing.NewService()

	historyCleanupService := scheduler.NewHistoryCleanupService(historyRepo, cfg)
	if err := historyCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start history cleanup scheduler")
	} else {
		logrus.Info("history cleanup scheduler started")
	}

	server, err := api.New(
		cfg,
		persistedInsightService,
		analysisService,
		authenticator,
		historyRepo,
		historyCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
