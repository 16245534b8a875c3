package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func customerSale(id int, customer string, amount float64, date time.Time) *domain.SaleRecord {
	record := newSale(id, 1, 1, amount, date)
	record.CustomerName = customer
	return record
}

func TestSegmentCustomers(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	daysAgo := func(days int) time.Time { return now.AddDate(0, 0, -days) }

	tests := []struct {
		name     string
		records  []*domain.SaleRecord
		validate func(t *testing.T, result []domain.CustomerSegment)
	}{
		{
			name:    "Sem vendas - deve retornar lista vazia",
			records: []*domain.SaleRecord{},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				assert.NotNil(t, result)
				assert.Empty(t, result)
			},
		},
		{
			name: "Seis compras nos últimos 20 dias somando 12000 - deve ser Champion",
			records: []*domain.SaleRecord{
				customerSale(1, "Ana", 2000, daysAgo(1)),
				customerSale(2, "Ana", 2000, daysAgo(4)),
				customerSale(3, "Ana", 2000, daysAgo(8)),
				customerSale(4, "Ana", 2000, daysAgo(12)),
				customerSale(5, "Ana", 2000, daysAgo(16)),
				customerSale(6, "Ana", 2000, daysAgo(20)),
			},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				require.Len(t, result, 1)
				assert.Equal(t, domain.CustomerSegment{
					CustomerName: "Ana",
					Recency:      1,
					Frequency:    6,
					Monetary:     12000,
					Segment:      "Champion",
				}, result[0])
			},
		},
		{
			name: "Uma compra há 100 dias - deve ser Lost",
			records: []*domain.SaleRecord{
				customerSale(1, "Bruno", 50, daysAgo(100)),
			},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				require.Len(t, result, 1)
				assert.Equal(t, 100, result[0].Recency)
				assert.Equal(t, "Lost", result[0].Segment)
			},
		},
		{
			name: "Cascata de regras - a primeira regra que casar vence",
			records: []*domain.SaleRecord{
				// Loyal: recente o bastante e frequente
				customerSale(1, "Carla", 100, daysAgo(45)),
				customerSale(2, "Carla", 100, daysAgo(50)),
				customerSale(3, "Carla", 100, daysAgo(55)),
				// At Risk: antigo e de alto valor
				customerSale(4, "Diego", 6000, daysAgo(70)),
				// New/Promising mesmo com alto valor
				customerSale(5, "Elisa", 20000, daysAgo(10)),
				// Regular: entre 61 e 90 dias com baixo valor
				customerSale(6, "Fabio", 100, daysAgo(75)),
				// At Risk vence Lost quando o valor é alto
				customerSale(7, "Gabi", 9000, daysAgo(120)),
			},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				require.Len(t, result, 5)

				segments := map[string]string{}
				for _, item := range result {
					segments[item.CustomerName] = item.Segment
				}

				assert.Equal(t, "Loyal", segments["Carla"])
				assert.Equal(t, "At Risk", segments["Diego"])
				assert.Equal(t, "New/Promising", segments["Elisa"])
				assert.Equal(t, "Regular", segments["Fabio"])
				assert.Equal(t, "At Risk", segments["Gabi"])
			},
		},
		{
			name: "Vendas sem cliente - devem ser ignoradas",
			records: []*domain.SaleRecord{
				customerSale(1, "", 500, daysAgo(1)),
				customerSale(2, "Helena", 500, daysAgo(2)),
			},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				require.Len(t, result, 1)
				assert.Equal(t, "Helena", result[0].CustomerName)
				assert.Equal(t, 1, result[0].Frequency)
			},
		},
		{
			name: "Venda com data futura - recência não pode ser negativa",
			records: []*domain.SaleRecord{
				customerSale(1, "Igor", 300, now.AddDate(0, 0, 3)),
			},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				require.Len(t, result, 1)
				assert.Equal(t, 0, result[0].Recency)
				assert.Equal(t, "New/Promising", result[0].Segment)
			},
		},
		{
			name: "Vários clientes - deve ordenar pelo nome",
			records: []*domain.SaleRecord{
				customerSale(1, "Zeca", 10, daysAgo(1)),
				customerSale(2, "Alice", 10, daysAgo(1)),
				customerSale(3, "Marcos", 10, daysAgo(1)),
			},
			validate: func(t *testing.T, result []domain.CustomerSegment) {
				require.Len(t, result, 3)
				assert.Equal(t, "Alice", result[0].CustomerName)
				assert.Equal(t, "Marcos", result[1].CustomerName)
				assert.Equal(t, "Zeca", result[2].CustomerName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, SegmentCustomers(NewSalesTable(tt.records), now))
		})
	}
}

func TestSegmentCustomers_RecencyFollowsInjectedNow(t *testing.T) {
	lastPurchase := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	table := NewSalesTable([]*domain.SaleRecord{customerSale(1, "Ana", 100, lastPurchase)})

	sameDay := SegmentCustomers(table, lastPurchase.Add(23*time.Hour))
	nextDay := SegmentCustomers(table, lastPurchase.Add(24*time.Hour))

	assert.Equal(t, 0, sameDay[0].Recency)
	assert.Equal(t, 1, nextDay[0].Recency)
	assert.Equal(t, sameDay, SegmentCustomers(table, lastPurchase.Add(23*time.Hour)))
}
