package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/analytics"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const (
	maxTrendDays = 365
	maxListLimit = 100
)

// Analyzer expõe as análises de vendas de uma empresa. Todas respeitam o escopo
// informado: vendedores enxergam apenas as próprias vendas.
type Analyzer interface {
	GetDashboardSummary(ctx context.Context, scope domain.AnalyticsScope) (*domain.DashboardSummary, error)
	GetSalesTrend(ctx context.Context, scope domain.AnalyticsScope, days int) ([]domain.DailySales, error)
	GetRecentSales(ctx context.Context, scope domain.AnalyticsScope, limit int) ([]domain.RecentSale, error)
	GetTopProducts(ctx context.Context, scope domain.AnalyticsScope, limit int) ([]domain.TopProduct, error)
	GetSalesReport(ctx context.Context, scope domain.AnalyticsScope, startDate, endDate *time.Time) (*domain.SalesReport, error)
	GetLeaderboard(ctx context.Context, scope domain.AnalyticsScope) (*domain.Leaderboard, error)
	GetSalespersonDashboard(ctx context.Context, scope domain.AnalyticsScope) (*domain.SalespersonDashboard, error)

	GetExecutiveKPI(ctx context.Context, scope domain.AnalyticsScope) (*domain.ExecutiveKPI, error)
	GetProductABC(ctx context.Context, scope domain.AnalyticsScope) ([]domain.ProductClassification, error)
	GetCustomerRFM(ctx context.Context, scope domain.AnalyticsScope) ([]domain.CustomerSegment, error)
	GetSalespersonConsistency(ctx context.Context, scope domain.AnalyticsScope) ([]domain.ConsistencyScore, error)
	GetSalesForecast(ctx context.Context, scope domain.AnalyticsScope) (*domain.Forecast, error)
}

type Service struct {
	cfg         *config.Config
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	m *metrics.Metrics,
) Analyzer {
	return &Service{
		cfg:         cfg,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		metrics:     m,
		now:         time.Now,
	}
}

// dataset reúne os dados carregados para uma análise
type dataset struct {
	table            analytics.SalesTable
	products         []*domain.Product
	users            []*domain.User
	salespersonCount int
}

type loadOptions struct {
	filters          domain.SaleFilters
	products         bool
	users            bool
	salespersonCount bool
}

// load busca as vendas e os dados auxiliares em paralelo; a primeira falha cancela as demais consultas
func (s *Service) load(ctx context.Context, companyID int, opts loadOptions) (*dataset, error) {
	var (
		records []*domain.SaleRecord
		data    dataset
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		records, err = s.saleRepo.ListByCompany(gctx, companyID, opts.filters)
		return errors.Wrap(err, "erro ao buscar vendas")
	})

	if opts.products {
		g.Go(func() error {
			var err error
			data.products, err = s.productRepo.ListByCompany(gctx, companyID)
			return errors.Wrap(err, "erro ao buscar produtos")
		})
	}

	if opts.users {
		g.Go(func() error {
			var err error
			data.users, err = s.userRepo.ListByCompany(gctx, companyID)
			return errors.Wrap(err, "erro ao buscar usuários")
		})
	}

	if opts.salespersonCount {
		g.Go(func() error {
			var err error
			data.salespersonCount, err = s.userRepo.CountByRole(gctx, companyID, domain.RoleSalesman)
			return errors.Wrap(err, "erro ao contar vendedores")
		})
	}

	if err := g.Wait(); err != nil {
		logrus.WithFields(logrus.Fields{
			"company_id": companyID,
			"error":      err,
		}).Error("Erro ao carregar dados para análise")
		return nil, err
	}

	data.table = analytics.NewSalesTable(records)
	return &data, nil
}

func scopedFilters(scope domain.AnalyticsScope) domain.SaleFilters {
	return domain.SaleFilters{UserID: scope.UserID}
}

func (s *Service) observe(operation string, start time.Time, err error) {
	s.metrics.ObserveAnalytics(operation, time.Since(start), err)
}

func (s *Service) currentTime() time.Time {
	return s.now().UTC()
}

func (s *Service) GetDashboardSummary(ctx context.Context, scope domain.AnalyticsScope) (summary *domain.DashboardSummary, err error) {
	defer func(start time.Time) { s.observe("dashboard_summary", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope)})
	if err != nil {
		return nil, err
	}

	result := analytics.Summarize(data.table, s.currentTime())
	return &result, nil
}

func (s *Service) GetSalesTrend(ctx context.Context, scope domain.AnalyticsScope, days int) (trend []domain.DailySales, err error) {
	defer func(start time.Time) { s.observe("sales_trend", start, err) }(time.Now())

	if days == 0 {
		days = s.cfg.Analytics.TrendDays
	}
	if days <= 0 || days > maxTrendDays {
		return nil, ErrInvalidDays
	}

	now := s.currentTime()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))

	filters := scopedFilters(scope)
	filters.StartDate = &since

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: filters})
	if err != nil {
		return nil, err
	}

	return analytics.DailyTrend(data.table, since), nil
}

func (s *Service) resolveLimit(limit, fallback int) (int, error) {
	if limit == 0 {
		limit = fallback
	}
	if limit <= 0 || limit > maxListLimit {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

func (s *Service) GetRecentSales(ctx context.Context, scope domain.AnalyticsScope, limit int) (sales []domain.RecentSale, err error) {
	defer func(start time.Time) { s.observe("recent_sales", start, err) }(time.Now())

	limit, err = s.resolveLimit(limit, s.cfg.Analytics.RecentSalesLimit)
	if err != nil {
		return nil, err
	}

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope), products: true, users: true})
	if err != nil {
		return nil, err
	}

	return analytics.RecentSales(data.table, data.products, data.users, limit), nil
}

func (s *Service) GetTopProducts(ctx context.Context, scope domain.AnalyticsScope, limit int) (products []domain.TopProduct, err error) {
	defer func(start time.Time) { s.observe("top_products", start, err) }(time.Now())

	limit, err = s.resolveLimit(limit, s.cfg.Analytics.TopProductsLimit)
	if err != nil {
		return nil, err
	}

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope), products: true})
	if err != nil {
		return nil, err
	}

	return analytics.TopProducts(data.table, data.products, limit), nil
}

func (s *Service) GetSalesReport(ctx context.Context, scope domain.AnalyticsScope, startDate, endDate *time.Time) (report *domain.SalesReport, err error) {
	defer func(start time.Time) { s.observe("sales_report", start, err) }(time.Now())

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, ErrInvalidDateRange
	}

	filters := scopedFilters(scope)
	filters.StartDate = startDate
	if endDate != nil {
		// A data final é inclusiva: considera o dia inteiro
		endOfDay := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filters.EndDate = &endOfDay
	}

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: filters, products: true, users: true})
	if err != nil {
		return nil, err
	}

	result := analytics.BuildSalesReport(data.table, data.products, data.users)
	return &result, nil
}

func (s *Service) GetLeaderboard(ctx context.Context, scope domain.AnalyticsScope) (leaderboard *domain.Leaderboard, err error) {
	defer func(start time.Time) { s.observe("leaderboard", start, err) }(time.Now())

	company, err := s.companyRepo.GetByID(ctx, scope.CompanyID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar empresa")
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	// O ranking sempre considera a empresa inteira, inclusive para vendedores
	data, err := s.load(ctx, scope.CompanyID, loadOptions{users: true})
	if err != nil {
		return nil, err
	}

	return &domain.Leaderboard{
		CompanyName: company.Name,
		Leaderboard: analytics.BuildLeaderboard(data.table, data.users),
	}, nil
}

func (s *Service) GetSalespersonDashboard(ctx context.Context, scope domain.AnalyticsScope) (dashboard *domain.SalespersonDashboard, err error) {
	defer func(start time.Time) { s.observe("salesperson_dashboard", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{products: true, users: true})
	if err != nil {
		return nil, err
	}

	var user *domain.User
	for _, candidate := range data.users {
		if candidate != nil && candidate.ID == scope.RequesterID {
			user = candidate
			break
		}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	commissionRate := s.cfg.Analytics.CommissionRate
	if commissionRate <= 0 {
		commissionRate = analytics.DefaultCommissionRate
	}

	result := analytics.BuildSalespersonDashboard(data.table, user, data.products, s.currentTime(), commissionRate)
	return &result, nil
}

func (s *Service) GetExecutiveKPI(ctx context.Context, scope domain.AnalyticsScope) (kpi *domain.ExecutiveKPI, err error) {
	defer func(start time.Time) { s.observe("executive_kpi", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope), salespersonCount: true})
	if err != nil {
		return nil, err
	}

	result := analytics.ComputeExecutiveKPI(data.table, data.salespersonCount, s.currentTime())
	return &result, nil
}

func (s *Service) GetProductABC(ctx context.Context, scope domain.AnalyticsScope) (classification []domain.ProductClassification, err error) {
	defer func(start time.Time) { s.observe("product_abc", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope), products: true})
	if err != nil {
		return nil, err
	}

	return analytics.ClassifyProducts(data.table, data.products), nil
}

func (s *Service) GetCustomerRFM(ctx context.Context, scope domain.AnalyticsScope) (segments []domain.CustomerSegment, err error) {
	defer func(start time.Time) { s.observe("customer_rfm", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope)})
	if err != nil {
		return nil, err
	}

	return analytics.SegmentCustomers(data.table, s.currentTime()), nil
}

func (s *Service) GetSalespersonConsistency(ctx context.Context, scope domain.AnalyticsScope) (scores []domain.ConsistencyScore, err error) {
	defer func(start time.Time) { s.observe("salesperson_consistency", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope), users: true})
	if err != nil {
		return nil, err
	}

	names := make(map[int]string, len(data.users))
	for _, user := range data.users {
		if user != nil {
			names[user.ID] = user.FullName
		}
	}

	scores = analytics.ScoreConsistency(data.table)
	for i := range scores {
		name, exists := names[scores[i].UserID]
		if !exists || name == "" {
			name = domain.UnknownName
		}
		scores[i].Name = name
	}

	return scores, nil
}

func (s *Service) GetSalesForecast(ctx context.Context, scope domain.AnalyticsScope) (forecast *domain.Forecast, err error) {
	defer func(start time.Time) { s.observe("sales_forecast", start, err) }(time.Now())

	data, err := s.load(ctx, scope.CompanyID, loadOptions{filters: scopedFilters(scope)})
	if err != nil {
		return nil, err
	}

	result := analytics.ComputeForecast(data.table)
	return &result, nil
}
