package analytics

import (
	"sort"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	DefaultCommissionRate = 0.05

	salespersonTrendDays     = 30
	minTrendDaysToPrediction = 5
)

type salespersonTotals struct {
	userID   int
	revenue  decimal.Decimal
	quantity int
}

// rankSalespeople agrupa as vendas por vendedor, ordenando por receita decrescente e id crescente no empate
func rankSalespeople(table SalesTable) []*salespersonTotals {
	byUser := make(map[int]*salespersonTotals)
	for _, row := range table.rows {
		totals, exists := byUser[row.UserID]
		if !exists {
			totals = &salespersonTotals{userID: row.UserID, revenue: decimal.Zero}
			byUser[row.UserID] = totals
		}
		totals.revenue = totals.revenue.Add(row.Amount)
		totals.quantity += row.Quantity
	}

	ranking := make([]*salespersonTotals, 0, len(byUser))
	for _, totals := range byUser {
		ranking = append(ranking, totals)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].revenue.Cmp(ranking[j].revenue); cmp != 0 {
			return cmp > 0
		}
		return ranking[i].userID < ranking[j].userID
	})

	return ranking
}

// BuildLeaderboard monta o ranking dos vendedores da empresa que têm ao menos uma venda.
// Vendas de usuários que não estão em users são ignoradas.
func BuildLeaderboard(table SalesTable, users []*domain.User) []domain.LeaderboardEntry {
	usersByID := make(map[int]*domain.User, len(users))
	for _, user := range users {
		if user != nil {
			usersByID[user.ID] = user
		}
	}

	leaderboard := make([]domain.LeaderboardEntry, 0)
	for _, totals := range rankSalespeople(table) {
		user, exists := usersByID[totals.userID]
		if !exists {
			continue
		}

		revenue := money(totals.revenue)
		target := salesTarget(user)

		leaderboard = append(leaderboard, domain.LeaderboardEntry{
			Rank:            len(leaderboard) + 1,
			UserID:          user.ID,
			Name:            user.FullName,
			Avatar:          avatarInitial(user.FullName),
			Revenue:         revenue,
			Quantity:        totals.quantity,
			SalesTarget:     target,
			AchievedPercent: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(revenue, float64(target)) * 100),
		})
	}

	return leaderboard
}

// BuildSalespersonDashboard monta o painel individual do vendedor.
// companyTable deve conter as vendas de toda a empresa, usadas para a posição no ranking.
func BuildSalespersonDashboard(
	companyTable SalesTable,
	user *domain.User,
	products []*domain.Product,
	now time.Time,
	commissionRate float64,
) domain.SalespersonDashboard {
	userTable := companyTable.Filter(func(row SaleRow) bool {
		return row.UserID == user.ID
	})

	totalSales := userTable.TotalAmount()
	target := salesTarget(user)

	rank := 1
	for _, totals := range rankSalespeople(companyTable) {
		if totals.userID == user.ID {
			break
		}
		rank++
	}

	trend := DailyTrend(userTable, now.UTC().AddDate(0, 0, -salespersonTrendDays))

	prediction := domain.SalespersonPrediction{Message: domain.NotEnoughDataLabel}
	if len(trend) > minTrendDaysToPrediction {
		predicted := money(totalSales.
			Div(decimal.NewFromInt(int64(len(trend)))).
			Mul(decimal.NewFromInt(salespersonTrendDays)))

		prediction = domain.SalespersonPrediction{
			PredictedNextMonth: &predicted,
			Trend:              domain.TrendStable,
		}
	}

	return domain.SalespersonDashboard{
		KPI: domain.SalespersonKPI{
			TotalSales:      money(totalSales),
			Earnings:        money(totalSales.Mul(decimal.NewFromFloat(commissionRate))),
			Target:          target,
			AchievedPercent: utils.RoundWithOneDecimalPlace(utils.SafeDivide(totalSales.InexactFloat64(), float64(target)) * 100),
			Rank:            rank,
		},
		Charts: domain.SalespersonCharts{
			ProductDistribution: ProductDistribution(userTable, products),
			RegionDistribution:  RegionBreakdown(userTable),
			SalesTrend:          trend,
		},
		Prediction: prediction,
	}
}

func salesTarget(user *domain.User) int {
	if user.SalesTarget == nil || *user.SalesTarget < 0 {
		return 0
	}
	return *user.SalesTarget
}

func avatarInitial(name string) string {
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}
