package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type userDay struct {
	userID int
	day    time.Time
}

// ScoreConsistency calcula a variação do total diário de vendas de cada vendedor.
// Dias sem venda não entram na série. O nome fica a cargo do chamador.
func ScoreConsistency(table SalesTable) []domain.ConsistencyScore {
	if table.IsEmpty() {
		return []domain.ConsistencyScore{}
	}

	dailyTotals := make(map[userDay]decimal.Decimal)
	for _, row := range table.rows {
		key := userDay{userID: row.UserID, day: startOfDay(row.Date)}
		dailyTotals[key] = dailyTotals[key].Add(row.Amount)
	}

	seriesByUser := make(map[int][]float64)
	for key, total := range dailyTotals {
		seriesByUser[key.userID] = append(seriesByUser[key.userID], total.InexactFloat64())
	}

	scores := make([]domain.ConsistencyScore, 0, len(seriesByUser))
	for userID, series := range seriesByUser {
		mean, std := meanAndPopulationStd(series)

		cv := 0.0
		if mean > 0 {
			cv = std / mean * 100
		}

		scores = append(scores, domain.ConsistencyScore{
			UserID: userID,
			Std:    std,
			Mean:   mean,
			Count:  len(series),
			CV:     cv,
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].UserID < scores[j].UserID
	})

	return scores
}

func meanAndPopulationStd(series []float64) (float64, float64) {
	if len(series) == 0 {
		return 0, 0
	}

	// Soma em ordem fixa para o resultado não depender da iteração do map
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}
	mean := sum / float64(len(sorted))

	var squares float64
	for _, value := range sorted {
		squares += (value - mean) * (value - mean)
	}

	return mean, math.Sqrt(squares / float64(len(sorted)))
}
