package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const growthWindowDays = 30

// Summarize calcula o resumo do painel: receita, pedidos, ticket médio e crescimento
// dos últimos 30 dias em relação aos 30 anteriores.
func Summarize(table SalesTable, now time.Time) domain.DashboardSummary {
	now = now.UTC()
	currentStart := now.AddDate(0, 0, -growthWindowDays)
	previousStart := currentStart.AddDate(0, 0, -growthWindowDays)

	total := decimal.Zero
	current := decimal.Zero
	previous := decimal.Zero
	for _, row := range table.rows {
		total = total.Add(row.Amount)

		switch {
		case !row.Date.Before(currentStart):
			current = current.Add(row.Amount)
		case !row.Date.Before(previousStart):
			previous = previous.Add(row.Amount)
		}
	}

	averageOrderValue := decimal.Zero
	if orders := table.Len(); orders > 0 {
		averageOrderValue = total.Div(decimal.NewFromInt(int64(orders)))
	}

	growth := 0.0
	switch {
	case previous.IsPositive():
		growth = current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
	case current.IsPositive():
		growth = 100
	}

	return domain.DashboardSummary{
		TotalRevenue:  money(total),
		TotalOrders:   table.Len(),
		AvgOrderValue: money(averageOrderValue),
		SalesGrowth:   utils.RoundWithTwoDecimalPlace(growth),
	}
}

type dailyAccumulator struct {
	amount decimal.Decimal
	orders int
}

// DailyTrend soma as vendas por dia (UTC) a partir de since, em ordem crescente de data
func DailyTrend(table SalesTable, since time.Time) []domain.DailySales {
	days := make(map[time.Time]*dailyAccumulator)
	for _, row := range table.rows {
		if row.Date.Before(since) {
			continue
		}

		day := startOfDay(row.Date)
		accumulator, exists := days[day]
		if !exists {
			accumulator = &dailyAccumulator{amount: decimal.Zero}
			days[day] = accumulator
		}
		accumulator.amount = accumulator.amount.Add(row.Amount)
		accumulator.orders++
	}

	ordered := make([]time.Time, 0, len(days))
	for day := range days {
		ordered = append(ordered, day)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})

	trend := make([]domain.DailySales, 0, len(ordered))
	for _, day := range ordered {
		trend = append(trend, domain.DailySales{
			Date:   day.Format(time.DateOnly),
			Amount: money(days[day].amount),
			Orders: days[day].orders,
		})
	}

	return trend
}

// RecentSales retorna as vendas mais recentes (empate pelo maior id) com nomes de produto e vendedor
func RecentSales(table SalesTable, products []*domain.Product, users []*domain.User, limit int) []domain.RecentSale {
	rows := table.Rows()
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].ID > rows[j].ID
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	productNamesByID := productNames(products)
	userNamesByID := userNames(users)

	recent := make([]domain.RecentSale, 0, len(rows))
	for _, row := range rows {
		productName, ok := productNamesByID[row.ProductID]
		if !ok {
			productName = domain.UnknownName
		}

		salesmanName, ok := userNamesByID[row.UserID]
		if !ok {
			salesmanName = domain.UnknownName
		}

		recent = append(recent, domain.RecentSale{
			ID:           row.ID,
			ProductName:  productName,
			Amount:       money(row.Amount),
			Date:         row.Date,
			SalesmanName: salesmanName,
			Status:       domain.SaleStatusDone,
		})
	}

	return recent
}
