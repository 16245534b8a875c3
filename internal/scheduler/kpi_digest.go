// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/messaging/kafka"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type KPIDigestConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// KPIDigestService calcula periodicamente os KPIs executivos de cada empresa e publica o resumo
type KPIDigestService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	companyRepo         repository.CompanyRepository
	publisher           kafka.DigestPublisher
	metrics             *metrics.Metrics
	config              KPIDigestConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
}

func NewKPIDigestService(
	analyzer analyzing.Analyzer,
	companyRepo repository.CompanyRepository,
	publisher kafka.DigestPublisher,
	m *metrics.Metrics,
	cfg *config.Config,
) *KPIDigestService {
	digestConfig := KPIDigestConfig{
		CronSchedule: cfg.KPIDigest.CronSchedule, // Default: 7h da manhã todos os dias
		SyncEnabled:  cfg.KPIDigest.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador do resumo de KPIs carregada")

	return &KPIDigestService{
		scheduler:   gocron.NewScheduler(time.Local),
		analyzer:    analyzer,
		companyRepo: companyRepo,
		publisher:   publisher,
		metrics:     m,
		config:      digestConfig,
		now:         time.Now,
	}
}

func (s *KPIDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do resumo de KPIs desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunDigest(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração do resumo de KPIs")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest gera o resumo de todas as empresas. Uma empresa com falha é registrada e ignorada.
// Retorna os resumos gerados; nenhum é guardado pela API.
func (s *KPIDigestService) RunDigest(ctx context.Context) ([]domain.KPIDigest, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Resumo de KPIs já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		s.metrics.IncrDigestRun(err)
		return nil, fmt.Errorf("erro ao gerar identificador da execução: %w", err)
	}

	s.syncMutex.Lock()
	s.lastRunID = runID
	s.syncMutex.Unlock()

	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar empresas para o resumo de KPIs")
		s.metrics.IncrDigestRun(err)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"companies": len(companies),
	}).Info("Iniciando resumo de KPIs")

	digests := s.processCompaniesWithDate(ctx, runID, companies, s.now())

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"companies": len(companies),
		"published": len(digests),
	}).Info("Resumo de KPIs concluído")

	s.metrics.IncrDigestRun(nil)
	return digests, nil
}

func (s *KPIDigestService) processCompaniesWithDate(
	ctx context.Context,
	runID string,
	companies []*domain.Company,
	generatedAt time.Time,
) []domain.KPIDigest {
	digests := make([]domain.KPIDigest, 0, len(companies))
	for _, company := range companies {
		if company == nil {
			continue
		}

		digest, err := s.processCompany(ctx, runID, company, generatedAt)
		s.metrics.IncrDigestCompany(err)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id":     runID,
				"company_id": company.ID,
				"error":      err,
			}).Error("Erro ao gerar resumo de KPIs da empresa")
			continue
		}

		digests = append(digests, digest)
	}

	return digests
}

func (s *KPIDigestService) processCompany(ctx context.Context, runID string, company *domain.Company, generatedAt time.Time) (domain.KPIDigest, error) {
	kpi, err := s.analyzer.GetExecutiveKPI(ctx, domain.AnalyticsScope{CompanyID: company.ID})
	if err != nil {
		return domain.KPIDigest{}, err
	}

	digest := domain.KPIDigest{
		RunID:       runID,
		CompanyID:   company.ID,
		CompanyName: company.Name,
		GeneratedAt: generatedAt.UTC(),
		KPI:         *kpi,
	}

	logrus.WithFields(logrus.Fields{
		"run_id":                runID,
		"company_id":            company.ID,
		"run_rate":              kpi.RunRate,
		"active_salesmen_ratio": kpi.ActiveSalesmenRatio,
	}).Info("KPIs executivos calculados")

	if err := s.publisher.Publish(ctx, digest); err != nil {
		return domain.KPIDigest{}, err
	}

	return digest, nil
}

// TriggerManualSync inicia manualmente uma geração do resumo de KPIs
func (s *KPIDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo de KPIs já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resumo de KPIs manual")
	go func() {
		if _, err := s.RunDigest(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração manual do resumo de KPIs")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *KPIDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
