package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestComputeExecutiveKPI(t *testing.T) {
	// 3 dias após o início do mês
	now := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		records          []*domain.SaleRecord
		salespersonCount int
		now              time.Time
		expected         domain.ExecutiveKPI
	}{
		{
			name:             "Sem vendas - deve zerar os indicadores",
			records:          nil,
			salespersonCount: 4,
			now:              now,
			expected:         domain.ExecutiveKPI{RunRate: 0, ActiveSalesmenRatio: 0},
		},
		{
			name: "200 no terceiro dia do mês - run rate deve ser 2000",
			records: []*domain.SaleRecord{
				newSale(1, 1, 1, 200, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)),
			},
			salespersonCount: 4,
			now:              now,
			expected:         domain.ExecutiveKPI{RunRate: 2000, ActiveSalesmenRatio: 25},
		},
		{
			name: "Nenhum vendedor ativo na semana - proporção deve ser zero",
			records: []*domain.SaleRecord{
				newSale(1, 1, 1, 900, time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC)),
				newSale(2, 1, 2, 100, time.Date(2024, 4, 20, 10, 0, 0, 0, time.UTC)),
			},
			salespersonCount: 4,
			now:              now,
			expected:         domain.ExecutiveKPI{RunRate: 0, ActiveSalesmenRatio: 0},
		},
		{
			name: "Nenhum vendedor cadastrado - proporção deve ser zero",
			records: []*domain.SaleRecord{
				newSale(1, 1, 1, 300, time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)),
			},
			salespersonCount: 0,
			now:              now,
			expected:         domain.ExecutiveKPI{RunRate: 3000, ActiveSalesmenRatio: 0},
		},
		{
			name: "Primeiro dia do mês - deve considerar ao menos um dia",
			records: []*domain.SaleRecord{
				newSale(1, 1, 1, 100, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
			},
			salespersonCount: 3,
			now:              time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			expected:         domain.ExecutiveKPI{RunRate: 3000, ActiveSalesmenRatio: 33.3},
		},
		{
			name: "Vendedor com várias vendas conta uma vez só",
			records: []*domain.SaleRecord{
				newSale(1, 1, 1, 10, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
				newSale(2, 1, 1, 10, time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)),
				newSale(3, 1, 2, 10, time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)),
			},
			salespersonCount: 3,
			now:              now,
			expected:         domain.ExecutiveKPI{RunRate: 300, ActiveSalesmenRatio: 66.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeExecutiveKPI(NewSalesTable(tt.records), tt.salespersonCount, tt.now)

			assert.Equal(t, tt.expected, result)
			assert.Nil(t, result.TopMoverID)
		})
	}
}

func TestComputeExecutiveKPI_Idempotent(t *testing.T) {
	now := time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)
	table := NewSalesTable([]*domain.SaleRecord{
		newSale(1, 1, 1, 123.45, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)),
	})

	assert.Equal(t, ComputeExecutiveKPI(table, 2, now), ComputeExecutiveKPI(table, 2, now))
}
