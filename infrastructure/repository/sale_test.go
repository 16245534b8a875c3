package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestBuildSalesQuery(t *testing.T) {
	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	userID := 7

	baseSelect := "SELECT s.id, COALESCE(s.product_id, 0), COALESCE(s.user_id, 0), s.company_id, " +
		"COALESCE(s.amount, 0), COALESCE(s.quantity, 0), s.date, COALESCE(s.customer_name, ''), s.region FROM sales s"

	tests := []struct {
		name         string
		filters      domain.SaleFilters
		expectedSQL  string
		expectedArgs []any
	}{
		{
			name:         "Sem filtros - apenas a empresa",
			filters:      domain.SaleFilters{},
			expectedSQL:  baseSelect + " WHERE s.company_id = $1 ORDER BY s.date ASC, s.id ASC",
			expectedArgs: []any{1},
		},
		{
			name:         "Com período - deve filtrar pela data",
			filters:      domain.SaleFilters{StartDate: &startDate, EndDate: &endDate},
			expectedSQL:  baseSelect + " WHERE s.company_id = $1 AND s.date >= $2 AND s.date <= $3 ORDER BY s.date ASC, s.id ASC",
			expectedArgs: []any{1, startDate, endDate},
		},
		{
			name:         "Com vendedor - deve filtrar pelo usuário",
			filters:      domain.SaleFilters{UserID: &userID},
			expectedSQL:  baseSelect + " WHERE s.company_id = $1 AND s.user_id = $2 ORDER BY s.date ASC, s.id ASC",
			expectedArgs: []any{1, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSalesQuery(1, tt.filters).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.expectedSQL, query)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
