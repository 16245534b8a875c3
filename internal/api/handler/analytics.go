package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

func GetSalesReport(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de início inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de fim inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.GetSalesReport(r.Context(), claims.Scope(), startDate, endDate)
		if err != nil {
			handleAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, report)
	}
}

func GetLeaderboard(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetLeaderboard(ctx, scope)
	})
}

func GetSalespersonDashboard(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetSalespersonDashboard(ctx, scope)
	})
}

func GetExecutiveKPI(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetExecutiveKPI(ctx, scope)
	})
}

func GetProductABC(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetProductABC(ctx, scope)
	})
}

func GetCustomerRFM(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetCustomerRFM(ctx, scope)
	})
}

func GetSalespersonConsistency(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetSalespersonConsistency(ctx, scope)
	})
}

func GetSalesForecast(service analyzing.Analyzer) http.HandlerFunc {
	return scopedAnalytics(func(ctx context.Context, scope domain.AnalyticsScope) (any, error) {
		return service.GetSalesForecast(ctx, scope)
	})
}

// scopedAnalytics atende análises sem parâmetros além do escopo do usuário autenticado
func scopedAnalytics(compute func(ctx context.Context, scope domain.AnalyticsScope) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		result, err := compute(r.Context(), claims.Scope())
		if err != nil {
			handleAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, result)
	}
}
