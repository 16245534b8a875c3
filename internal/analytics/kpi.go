package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	runRateMonthDays = 30
	activeWindowDays = 7
)

// ComputeExecutiveKPI calcula o run rate do mês corrente e a proporção de vendedores ativos na semana.
// O top mover não é calculado e sai sempre nulo.
func ComputeExecutiveKPI(table SalesTable, salespersonCount int, now time.Time) domain.ExecutiveKPI {
	if table.IsEmpty() {
		return domain.ExecutiveKPI{}
	}

	now = now.UTC()
	monthStart := startOfMonth(now)
	weekStart := now.AddDate(0, 0, -activeWindowDays)

	currentRevenue := decimal.Zero
	activeSalesmen := make(map[int]struct{})
	for _, row := range table.rows {
		if !row.Date.Before(monthStart) {
			currentRevenue = currentRevenue.Add(row.Amount)
		}
		if !row.Date.Before(weekStart) {
			activeSalesmen[row.UserID] = struct{}{}
		}
	}

	daysPassed := wholeDaysBetween(monthStart, now)
	if daysPassed < 1 {
		daysPassed = 1
	}

	runRate := currentRevenue.
		Div(decimal.NewFromInt(int64(daysPassed))).
		Mul(decimal.NewFromInt(runRateMonthDays))

	ratio := 0.0
	if salespersonCount > 0 {
		ratio = float64(len(activeSalesmen)) / float64(salespersonCount) * 100
	}

	return domain.ExecutiveKPI{
		RunRate:             money(runRate),
		ActiveSalesmenRatio: utils.RoundWithOneDecimalPlace(ratio),
	}
}
