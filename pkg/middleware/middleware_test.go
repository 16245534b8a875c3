package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRole: domain.RoleSalesman, UserCompany: 1}

	tests := []struct {
		name           string
		path           string
		header         string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Rota pública - deve passar sem token",
			path:           "/healthcheck",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Métricas - deve passar sem token",
			path:           "/metrics",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem cabeçalho - deve retornar não autorizado",
			path:           "/v1/dashboard/summary",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:           "Sem prefixo Bearer - deve retornar não autorizado",
			path:           "/v1/dashboard/summary",
			header:         "abc",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado - deve retornar o código de token expirado",
			path:   "/v1/dashboard/summary",
			header: "Bearer expirado",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expirado").Return(nil,
					authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Token válido - deve seguir com as claims no contexto",
			path:   "/v1/dashboard/summary",
			header: "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(claims, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var received *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
			if tt.header == "Bearer valido" {
				assert.Equal(t, claims, received)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{
			name:           "Gerente em rota de gerente - deve permitir",
			claims:         &domain.Claims{UserRole: domain.RoleManager},
			middleware:     ManagerOnly(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Vendedor em rota de gerente - deve negar",
			claims:         &domain.Claims{UserRole: domain.RoleSalesman},
			middleware:     ManagerOnly(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Vendedor em rota comum - deve permitir",
			claims:         &domain.Claims{UserRole: domain.RoleSalesman},
			middleware:     AllRoles(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Sem claims - deve retornar não autorizado",
			middleware:     AllRoles(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/analytics/forecast", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	allowed := []string{"http://localhost:3000"}

	t.Run("Origem permitida - deve incluir os cabeçalhos de CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors(allowed)(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida - não deve incluir cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
		req.Header.Set("Origin", "http://malicioso.com")
		rec := httptest.NewRecorder()

		Cors(allowed)(okHandler()).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight - deve responder sem chamar o handler", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/summary", nil)
		rec := httptest.NewRecorder()

		Cors(allowed)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, called)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	m := metrics.New()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware(m)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inexistente", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `sales_http_requests_total{method="GET",status_code="404"} 1`)
}

func TestLoggingMiddleware_ReaproveitaCorrelationID(t *testing.T) {
	const correlationID = "0b9c2a1e-7d4f-4a8e-9f3b-2c1d5e6f7a8b"
	var fromContext string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = log.GetCorrelationID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationIDHeader, correlationID)
	rec := httptest.NewRecorder()

	LoggingMiddleware(nil)(next).ServeHTTP(rec, req)

	assert.Equal(t, correlationID, rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, correlationID, fromContext)
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500_000))
	assert.Equal(t, "20 ms", formatDuration(20_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
