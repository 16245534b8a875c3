// Package analytics contém os cálculos de análise de vendas (ABC, RFM, KPIs, consistência e previsão).
// Todas as funções são puras: recebem uma SalesTable já materializada e devolvem resultados novos a cada chamada.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// SaleRow é uma linha normalizada da tabela de vendas
type SaleRow struct {
	ID           int
	ProductID    int
	UserID       int
	Amount       decimal.Decimal
	Quantity     int
	Date         time.Time
	CustomerName string
	Region       string
}

// SalesTable é a forma canônica em memória das vendas de uma empresa
type SalesTable struct {
	rows []SaleRow
}

// NewSalesTable converte os registros brutos em uma SalesTable. Não filtra nem valida nada.
func NewSalesTable(records []*domain.SaleRecord) SalesTable {
	rows := make([]SaleRow, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}

		row := SaleRow{
			ID:           record.ID,
			ProductID:    record.ProductID,
			UserID:       record.UserID,
			Amount:       decimal.NewFromFloat(record.Amount),
			Quantity:     record.Quantity,
			Date:         record.Date.UTC(),
			CustomerName: record.CustomerName,
		}
		if record.Region != nil {
			row.Region = *record.Region
		}

		rows = append(rows, row)
	}

	return SalesTable{rows: rows}
}

func (t SalesTable) Len() int {
	return len(t.rows)
}

func (t SalesTable) IsEmpty() bool {
	return len(t.rows) == 0
}

// Rows retorna uma cópia das linhas para que o chamador não altere a tabela
func (t SalesTable) Rows() []SaleRow {
	rows := make([]SaleRow, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Filter retorna uma nova tabela apenas com as linhas aceitas por keep
func (t SalesTable) Filter(keep func(SaleRow) bool) SalesTable {
	rows := make([]SaleRow, 0, len(t.rows))
	for _, row := range t.rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return SalesTable{rows: rows}
}

// TotalAmount soma o valor de todas as vendas da tabela
func (t SalesTable) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, row := range t.rows {
		total = total.Add(row.Amount)
	}
	return total
}

func startOfDay(date time.Time) time.Time {
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

func startOfMonth(date time.Time) time.Time {
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// wholeDaysBetween retorna os dias inteiros entre from e to, nunca negativo
func wholeDaysBetween(from, to time.Time) int {
	days := int(to.Sub(from) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

func money(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}
