package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status das execuções registradas
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics agrupa as métricas Prometheus da API. O registro é próprio da
// instância, permitindo criar várias nos testes sem colisão de coletores.
type Metrics struct {
	Registry *prometheus.Registry

	analyticsDuration *prometheus.HistogramVec
	analyticsTotal    *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	digestRuns        *prometheus.CounterVec
	digestCompanies   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		analyticsDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_analytics_duration_seconds",
				Help:    "Duração das análises por operação.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		analyticsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_analytics_total",
				Help: "Total de análises executadas por operação e status.",
			},
			[]string{"operation", "status"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_http_requests_total",
				Help: "Total de requisições HTTP por método e status.",
			},
			[]string{"method", "status_code"},
		),
		digestRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_kpi_digest_runs_total",
				Help: "Total de execuções do resumo de KPIs.",
			},
			[]string{"status"},
		),
		digestCompanies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_kpi_digest_companies_total",
				Help: "Total de empresas processadas pelo resumo de KPIs.",
			},
			[]string{"status"},
		),
	}
}

// ObserveAnalytics registra a duração e o resultado de uma análise
func (m *Metrics) ObserveAnalytics(operation string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.analyticsDuration.WithLabelValues(operation).Observe(d.Seconds())
	m.analyticsTotal.WithLabelValues(operation, statusOf(err)).Inc()
}

func (m *Metrics) IncrHTTPRequest(method, statusCode string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, statusCode).Inc()
}

func (m *Metrics) IncrDigestRun(err error) {
	if m == nil {
		return
	}
	m.digestRuns.WithLabelValues(statusOf(err)).Inc()
}

func (m *Metrics) IncrDigestCompany(err error) {
	if m == nil {
		return
	}
	m.digestCompanies.WithLabelValues(statusOf(err)).Inc()
}

// Handler expõe o registro no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
