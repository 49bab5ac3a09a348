package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository"
	"github.com/kenazlabs/kenaz-analytics-api/internal/api/handler/router"
	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/analyzing"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/authenticating"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/insighting"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cfg),
		},
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(cfg),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/ad",
			Method:      http.MethodPost,
			Handler:     GenerateAdInsight(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/ad/llm",
			Method:      http.MethodPost,
			Handler:     GenerateAdInsightLLM(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analysis/languages",
			Method:      http.MethodPost,
			Handler:     ExtractLanguages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/categorize",
			Method:      http.MethodPost,
			Handler:     CategorizeProduct(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Prompts() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/prompts/video-analysis",
			Method:      http.MethodGet,
			Handler:     GetVideoAnalysisPrompt(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prompts/influencer-analysis",
			Method:      http.MethodGet,
			Handler:     GetInfluencerAnalysisPrompt(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func History(repo repository.InsightHistoryRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/history",
			Method:      http.MethodGet,
			Handler:     GetInsightHistory(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
