package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	classALimit = decimal.RequireFromString("0.80")
	classBLimit = decimal.RequireFromString("0.95")
)

type productRevenue struct {
	productID int
	revenue   decimal.Decimal
}

// ClassifyProducts faz a análise ABC dos produtos pela receita.
// Ordem: receita decrescente e, em caso de empate, id do produto crescente.
func ClassifyProducts(table SalesTable, products []*domain.Product) []domain.ProductClassification {
	if table.IsEmpty() {
		return []domain.ProductClassification{}
	}

	revenueByProduct := make(map[int]decimal.Decimal)
	for _, row := range table.rows {
		revenueByProduct[row.ProductID] = revenueByProduct[row.ProductID].Add(row.Amount)
	}

	ranking := make([]productRevenue, 0, len(revenueByProduct))
	total := decimal.Zero
	for productID, revenue := range revenueByProduct {
		ranking = append(ranking, productRevenue{productID: productID, revenue: revenue})
		total = total.Add(revenue)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].revenue.Cmp(ranking[j].revenue); cmp != 0 {
			return cmp > 0
		}
		return ranking[i].productID < ranking[j].productID
	})

	names := productNames(products)

	classifications := make([]domain.ProductClassification, 0, len(ranking))
	cumulative := decimal.Zero
	for _, item := range ranking {
		cumulative = cumulative.Add(item.revenue)

		// Receita total zero não tem participação definida, todos ficam na classe C
		share := decimal.Zero
		class := domain.ClassC
		if total.IsPositive() {
			share = cumulative.Div(total)
			class = abcClass(share)
		}

		name, ok := names[item.productID]
		if !ok {
			name = domain.UnknownProductName
		}

		classifications = append(classifications, domain.ProductClassification{
			ProductID:       item.productID,
			Name:            name,
			Revenue:         money(item.revenue),
			CumulativeShare: share.Round(4).InexactFloat64(),
			Class:           class,
		})
	}

	return classifications
}

func abcClass(share decimal.Decimal) string {
	switch {
	case share.LessThanOrEqual(classALimit):
		return domain.ClassA
	case share.LessThanOrEqual(classBLimit):
		return domain.ClassB
	default:
		return domain.ClassC
	}
}

func productNames(products []*domain.Product) map[int]string {
	names := make(map[int]string, len(products))
	for _, product := range products {
		if product == nil {
			continue
		}
		names[product.ID] = product.Name
	}
	return names
}
