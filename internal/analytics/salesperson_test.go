package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestBuildLeaderboard(t *testing.T) {
	date := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	users := []*domain.User{
		{ID: 1, FullName: "Ana Souza", SalesTarget: intPtr(1000)},
		{ID: 2, FullName: "Bruno Lima"},
		{ID: 3, FullName: "Carla Dias", SalesTarget: intPtr(500)},
		{ID: 4, FullName: ""},
	}

	records := []*domain.SaleRecord{
		{ID: 1, ProductID: 1, UserID: 1, Amount: 600, Quantity: 2, Date: date},
		{ID: 2, ProductID: 1, UserID: 2, Amount: 800, Quantity: 3, Date: date},
		{ID: 3, ProductID: 1, UserID: 99, Amount: 5000, Quantity: 1, Date: date},
		{ID: 4, ProductID: 1, UserID: 4, Amount: 10, Quantity: 1, Date: date},
	}

	result := BuildLeaderboard(NewSalesTable(records), users)

	require.Len(t, result, 3)
	assert.Equal(t, domain.LeaderboardEntry{
		Rank:            1,
		UserID:          2,
		Name:            "Bruno Lima",
		Avatar:          "B",
		Revenue:         800,
		Quantity:        3,
		SalesTarget:     0,
		AchievedPercent: 0,
	}, result[0])
	assert.Equal(t, domain.LeaderboardEntry{
		Rank:            2,
		UserID:          1,
		Name:            "Ana Souza",
		Avatar:          "A",
		Revenue:         600,
		Quantity:        2,
		SalesTarget:     1000,
		AchievedPercent: 60,
	}, result[1])
	assert.Equal(t, 3, result[2].Rank)
	assert.Equal(t, "?", result[2].Avatar)
}

func TestBuildLeaderboard_Empty(t *testing.T) {
	result := BuildLeaderboard(NewSalesTable(nil), []*domain.User{{ID: 1, FullName: "Ana"}})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestBuildSalespersonDashboard(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	daysAgo := func(days int) time.Time { return now.AddDate(0, 0, -days) }
	products := []*domain.Product{{ID: 1, Name: "Notebook"}, {ID: 2, Name: "Mouse"}}
	user := &domain.User{ID: 1, FullName: "Ana Souza", Role: domain.RoleSalesman, SalesTarget: intPtr(1000)}

	userSale := func(id, productID int, days int, region *string) *domain.SaleRecord {
		record := newSale(id, productID, 1, 100, daysAgo(days))
		record.Region = region
		return record
	}

	tests := []struct {
		name     string
		records  []*domain.SaleRecord
		user     *domain.User
		validate func(t *testing.T, result domain.SalespersonDashboard)
	}{
		{
			name: "Seis dias de venda - deve prever o próximo mês",
			records: []*domain.SaleRecord{
				userSale(1, 1, 1, stringPtr("North")),
				userSale(2, 1, 2, stringPtr("North")),
				userSale(3, 2, 3, stringPtr("South")),
				userSale(4, 2, 4, nil),
				userSale(5, 1, 5, nil),
				userSale(6, 1, 6, nil),
				newSale(7, 1, 2, 1000, daysAgo(1)),
			},
			user: user,
			validate: func(t *testing.T, result domain.SalespersonDashboard) {
				assert.Equal(t, domain.SalespersonKPI{
					TotalSales:      600,
					Earnings:        30,
					Target:          1000,
					AchievedPercent: 60,
					Rank:            2,
				}, result.KPI)

				assert.Equal(t, []domain.NamedValue{
					{Name: "Notebook", Value: 400},
					{Name: "Mouse", Value: 200},
				}, result.Charts.ProductDistribution)
				assert.Equal(t, []domain.NamedValue{
					{Name: "North", Value: 200},
					{Name: "South", Value: 100},
				}, result.Charts.RegionDistribution)
				assert.Len(t, result.Charts.SalesTrend, 6)

				require.NotNil(t, result.Prediction.PredictedNextMonth)
				assert.Equal(t, 3000.0, *result.Prediction.PredictedNextMonth)
				assert.Equal(t, "Stable", result.Prediction.Trend)
				assert.Empty(t, result.Prediction.Message)
			},
		},
		{
			name: "Poucos dias de venda - não deve prever",
			records: []*domain.SaleRecord{
				userSale(1, 1, 1, nil),
				userSale(2, 1, 2, nil),
				userSale(3, 1, 60, nil),
			},
			user: user,
			validate: func(t *testing.T, result domain.SalespersonDashboard) {
				assert.Equal(t, 300.0, result.KPI.TotalSales)
				assert.Equal(t, 1, result.KPI.Rank)
				assert.Len(t, result.Charts.SalesTrend, 2)
				assert.Equal(t, "Not enough data", result.Prediction.Message)
				assert.Nil(t, result.Prediction.PredictedNextMonth)
			},
		},
		{
			name:    "Vendedor sem vendas e sem meta - deve zerar os indicadores",
			records: []*domain.SaleRecord{newSale(1, 1, 2, 100, daysAgo(1))},
			user:    &domain.User{ID: 5, FullName: "Novo"},
			validate: func(t *testing.T, result domain.SalespersonDashboard) {
				assert.Equal(t, 0.0, result.KPI.TotalSales)
				assert.Equal(t, 0.0, result.KPI.Earnings)
				assert.Equal(t, 0.0, result.KPI.AchievedPercent)
				assert.Equal(t, 2, result.KPI.Rank)
				assert.Empty(t, result.Charts.ProductDistribution)
				assert.Empty(t, result.Charts.SalesTrend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildSalespersonDashboard(NewSalesTable(tt.records), tt.user, products, now, DefaultCommissionRate))
		})
	}
}
