package handler

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// Os endpoints do painel respeitam o escopo do usuário: vendedores veem apenas as próprias vendas

func GetDashboardSummary(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		summary, err := service.GetDashboardSummary(r.Context(), claims.Scope())
		if err != nil {
			handleAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, summary)
	}
}

func GetSalesTrend(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		days, err := intQuery(r, "days")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days deve ser um número inteiro", nil)
			return
		}

		trend, err := service.GetSalesTrend(r.Context(), claims.Scope(), days)
		if err != nil {
			handleAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, trend)
	}
}

func GetRecentSales(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		limit, err := intQuery(r, "limit")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um número inteiro", nil)
			return
		}

		sales, err := service.GetRecentSales(r.Context(), claims.Scope(), limit)
		if err != nil {
			handleAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, sales)
	}
}

func GetTopProducts(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}

		limit, err := intQuery(r, "limit")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um número inteiro", nil)
			return
		}

		products, err := service.GetTopProducts(r.Context(), claims.Scope(), limit)
		if err != nil {
			handleAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, products)
	}
}
