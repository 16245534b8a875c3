package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestScoreConsistency(t *testing.T) {
	day1 := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 4, 2, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		records  []*domain.SaleRecord
		validate func(t *testing.T, result []domain.ConsistencyScore)
	}{
		{
			name:    "Sem vendas - deve retornar lista vazia",
			records: nil,
			validate: func(t *testing.T, result []domain.ConsistencyScore) {
				assert.NotNil(t, result)
				assert.Empty(t, result)
			},
		},
		{
			name: "Dois dias de venda - deve usar desvio padrão populacional",
			records: []*domain.SaleRecord{
				newSale(1, 1, 1, 60, day1),
				newSale(2, 1, 1, 40, day1.Add(3*time.Hour)),
				newSale(3, 1, 1, 300, day2),
			},
			validate: func(t *testing.T, result []domain.ConsistencyScore) {
				require.Len(t, result, 1)
				assert.Equal(t, 1, result[0].UserID)
				assert.Equal(t, 2, result[0].Count)
				assert.InDelta(t, 200.0, result[0].Mean, 1e-9)
				assert.InDelta(t, 100.0, result[0].Std, 1e-9)
				assert.InDelta(t, 50.0, result[0].CV, 1e-9)
			},
		},
		{
			name: "Dias sem venda não entram na série",
			records: []*domain.SaleRecord{
				newSale(1, 1, 2, 100, day1),
				newSale(2, 1, 2, 100, day1.AddDate(0, 0, 10)),
			},
			validate: func(t *testing.T, result []domain.ConsistencyScore) {
				require.Len(t, result, 1)
				assert.Equal(t, 2, result[0].Count)
				assert.Equal(t, 0.0, result[0].Std)
				assert.Equal(t, 0.0, result[0].CV)
			},
		},
		{
			name: "Média zero - CV deve ser zero",
			records: []*domain.SaleRecord{
				newSale(1, 1, 3, 0, day1),
				newSale(2, 1, 3, 0, day2),
			},
			validate: func(t *testing.T, result []domain.ConsistencyScore) {
				require.Len(t, result, 1)
				assert.Equal(t, 0.0, result[0].Mean)
				assert.Equal(t, 0.0, result[0].CV)
			},
		},
		{
			name: "Vários vendedores - deve ordenar pelo id",
			records: []*domain.SaleRecord{
				newSale(1, 1, 9, 10, day1),
				newSale(2, 1, 4, 10, day1),
				newSale(3, 1, 6, 10, day1),
			},
			validate: func(t *testing.T, result []domain.ConsistencyScore) {
				require.Len(t, result, 3)
				assert.Equal(t, 4, result[0].UserID)
				assert.Equal(t, 6, result[1].UserID)
				assert.Equal(t, 9, result[2].UserID)
				assert.Equal(t, "", result[0].Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ScoreConsistency(NewSalesTable(tt.records)))
		})
	}
}

func TestScoreConsistency_Idempotent(t *testing.T) {
	table := NewSalesTable([]*domain.SaleRecord{
		newSale(1, 1, 1, 10.1, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)),
		newSale(2, 1, 1, 20.2, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)),
		newSale(3, 1, 1, 30.3, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)),
		newSale(4, 1, 2, 5, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)),
	})

	assert.Equal(t, ScoreConsistency(table), ScoreConsistency(table))
}
