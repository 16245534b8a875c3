package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// claimsFromRequest obtém as claims do usuário autenticado, respondendo 401 quando ausentes
func claimsFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// intQuery lê um parâmetro inteiro opcional; ausente resulta em 0
func intQuery(r *http.Request, key string) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

func handleAnalyticsError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case analyzing.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case analyzing.IsNotFoundError(err):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular análise de vendas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados de vendas", nil)
	}
}
