package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/cron/:type/run",
		Method: http.MethodPost,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
			_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("type")))
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("primeiro"), tag("segundo")},
	}))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "Rota registrada - deve aplicar middlewares na ordem e expor parâmetros",
			method:         http.MethodPost,
			path:           "/v1/cron/kpi-digest/run",
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "kpi-digest", rec.Body.String())
				assert.Equal(t, []string{"primeiro", "segundo", "handler"}, order)
			},
		},
		{
			name:           "Rota inexistente - deve responder JSON 404",
			method:         http.MethodGet,
			path:           "/v1/nada",
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.True(t, strings.Contains(rec.Body.String(), "RES_001"))
			},
		},
		{
			name:           "Método errado - deve responder 400",
			method:         http.MethodGet,
			path:           "/v1/cron/kpi-digest/run",
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "VAL_001")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order = nil
			rec := httptest.NewRecorder()

			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec)
		})
	}
}
