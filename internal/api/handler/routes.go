package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
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

// Metrics expõe as métricas do Prometheus
func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
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

func Dashboard(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/sales-trend",
			Method:      http.MethodGet,
			Handler:     GetSalesTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/recent-sales",
			Method:      http.MethodGet,
			Handler:     GetRecentSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/reports",
			Method:      http.MethodGet,
			Handler:     GetSalesReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/leaderboard",
			Method:      http.MethodGet,
			Handler:     GetLeaderboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/salesman/dashboard",
			Method:      http.MethodGet,
			Handler:     GetSalespersonDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/kpi/executive",
			Method:      http.MethodGet,
			Handler:     GetExecutiveKPI(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/analytics/products/abc",
			Method:      http.MethodGet,
			Handler:     GetProductABC(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/analytics/customers/rfm",
			Method:      http.MethodGet,
			Handler:     GetCustomerRFM(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/analytics/salesmen/consistency",
			Method:      http.MethodGet,
			Handler:     GetSalespersonConsistency(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/analytics/forecast",
			Method:      http.MethodGet,
			Handler:     GetSalesForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOnly()},
		},
	}
}
