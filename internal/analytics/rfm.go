package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	championMonetary = decimal.NewFromInt(10000)
	atRiskMonetary   = decimal.NewFromInt(5000)
)

type customerActivity struct {
	lastPurchase time.Time
	frequency    int
	monetary     decimal.Decimal
}

// SegmentCustomers agrupa as vendas pelo nome do cliente e aplica as regras RFM.
// Vendas sem nome de cliente são ignoradas. O resultado é ordenado pelo nome.
func SegmentCustomers(table SalesTable, now time.Time) []domain.CustomerSegment {
	if table.IsEmpty() {
		return []domain.CustomerSegment{}
	}

	customers := make(map[string]*customerActivity)
	for _, row := range table.rows {
		if row.CustomerName == "" {
			continue
		}

		activity, exists := customers[row.CustomerName]
		if !exists {
			activity = &customerActivity{lastPurchase: row.Date, monetary: decimal.Zero}
			customers[row.CustomerName] = activity
		}

		if row.Date.After(activity.lastPurchase) {
			activity.lastPurchase = row.Date
		}
		activity.frequency++
		activity.monetary = activity.monetary.Add(row.Amount)
	}

	segments := make([]domain.CustomerSegment, 0, len(customers))
	for name, activity := range customers {
		recency := wholeDaysBetween(activity.lastPurchase, now)

		segments = append(segments, domain.CustomerSegment{
			CustomerName: name,
			Recency:      recency,
			Frequency:    activity.frequency,
			Monetary:     money(activity.monetary),
			Segment:      rfmSegment(recency, activity.frequency, activity.monetary),
		})
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].CustomerName < segments[j].CustomerName
	})

	return segments
}

// rfmSegment aplica as regras em ordem, a primeira que casar vence
func rfmSegment(recency, frequency int, monetary decimal.Decimal) string {
	switch {
	case recency <= 30 && frequency >= 5 && monetary.GreaterThanOrEqual(championMonetary):
		return domain.SegmentChampion
	case recency <= 60 && frequency >= 3:
		return domain.SegmentLoyal
	case recency > 60 && monetary.GreaterThanOrEqual(atRiskMonetary):
		return domain.SegmentAtRisk
	case recency <= 30:
		return domain.SegmentNewPromising
	case recency > 90:
		return domain.SegmentLost
	default:
		return domain.SegmentRegular
	}
}
