package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

const (
	ForecastHorizonMonths = 6
	minForecastMonths     = 2

	notEnoughDataMessage = "Not enough data for prediction"
)

type monthlyTotal struct {
	month time.Time
	total decimal.Decimal
}

// ComputeForecast ajusta uma tendência linear sobre os totais mensais e projeta os próximos meses.
// O modelo é ajustado a cada chamada e não é guardado em lugar nenhum.
func ComputeForecast(table SalesTable) domain.Forecast {
	months := monthlyTotals(table)
	if len(months) < minForecastMonths {
		return domain.Forecast{
			Status:   domain.ForecastStatusNotEnoughData,
			History:  []domain.ForecastPoint{},
			Forecast: []domain.ForecastPoint{},
			Summary:  domain.ForecastSummary{Message: notEnoughDataMessage},
		}
	}

	xs := make([]float64, 0, len(months))
	ys := make([]float64, 0, len(months))
	history := make([]domain.ForecastPoint, 0, len(months))
	total := decimal.Zero
	for _, month := range months {
		xs = append(xs, float64(dateOrdinal(month.month)))
		ys = append(ys, month.total.InexactFloat64())
		total = total.Add(month.total)

		history = append(history, domain.ForecastPoint{
			Date:   month.month.Format(time.DateOnly),
			Amount: money(month.total),
		})
	}

	trend := fitLinearTrend(xs, ys)

	lastMonth := months[len(months)-1].month
	forecast := make([]domain.ForecastPoint, 0, ForecastHorizonMonths)
	for i := 1; i <= ForecastHorizonMonths; i++ {
		nextMonth := lastMonth.AddDate(0, i, 0)

		prediction := trend.predict(float64(dateOrdinal(nextMonth)))
		if prediction < 0 {
			prediction = 0
		}

		forecast = append(forecast, domain.ForecastPoint{
			Date:         nextMonth.Format(time.DateOnly),
			Amount:       utils.RoundWithTwoDecimalPlace(prediction),
			IsPrediction: true,
		})
	}

	growth := domain.GrowthNegative
	if trend.slope > 0 {
		growth = domain.GrowthPositive
	}

	return domain.Forecast{
		Status:   domain.ForecastStatusOK,
		History:  history,
		Forecast: forecast,
		Summary: domain.ForecastSummary{
			TotalHistoricalRevenue: money(total),
			AverageMonthlySales:    money(total.Div(decimal.NewFromInt(int64(len(months))))),
			PredictedGrowth:        growth,
		},
	}
}

// monthlyTotals soma as vendas por início de mês, em ordem crescente
func monthlyTotals(table SalesTable) []monthlyTotal {
	totals := make(map[time.Time]decimal.Decimal)
	for _, row := range table.rows {
		month := startOfMonth(row.Date)
		totals[month] = totals[month].Add(row.Amount)
	}

	months := make([]monthlyTotal, 0, len(totals))
	for month, total := range totals {
		months = append(months, monthlyTotal{month: month, total: total})
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].month.Before(months[j].month)
	})

	return months
}
