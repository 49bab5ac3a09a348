package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository"
	"github.com/kenazlabs/kenaz-analytics-api/internal/api/handler"
	"github.com/kenazlabs/kenaz-analytics-api/internal/api/handler/router"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/scheduler"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/analyzing"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/authenticating"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/insighting"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	insightService insighting.Insighter,
	analysisService analyzing.Analyzer,
	authenticator authenticating.Authenticator,
	historyRepo repository.InsightHistoryRepository,
	historyCleanupService *scheduler.HistoryCleanupService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		HistoryCleanupService: historyCleanupService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(cfg)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Insights(insightService)...),
		router.WithRoutes(handler.Analysis(analysisService)...),
		router.WithRoutes(handler.Prompts()...),
		router.WithRoutes(handler.History(historyRepo)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.AllowedOriginList()),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error while running the server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down")
	return nil
}
