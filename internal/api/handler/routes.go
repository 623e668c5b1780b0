package handler

import (
	"net/http"

	"github.com/vfg2006/bizmetrics-api/internal/api/handler/router"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/insighting"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing"
	"github.com/vfg2006/bizmetrics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service metricsing.MetricsReader) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
	}
}

func Data(service metricsing.Uploader, maxBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/api/data/upload",
			Method:  http.MethodPost,
			Handler: UploadMetrics(service, maxBytes),
		},
	}
}

func Analysis(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analysis/quick-insight",
			Method:  http.MethodPost,
			Handler: QuickInsight(service),
		},
		{
			Path:    "/api/analysis/deep-analysis",
			Method:  http.MethodPost,
			Handler: DeepAnalysis(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func AdminUploads(service metricsing.UploadHistory, authService authenticating.Authenticator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AuthMiddleware(authService)}

	return []router.Route{
		{
			Path:        "/api/admin/uploads",
			Method:      http.MethodGet,
			Handler:     ListUploads(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/uploads/:id",
			Method:      http.MethodGet,
			Handler:     GetUpload(service),
			Middlewares: adminOnly,
		},
	}
}

func CronJobs(services CronJobServices, authService authenticating.Authenticator) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AuthMiddleware(authService)}

	return []router.Route{
		{
			Path:        "/api/admin/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly,
		},
	}
}
