// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type SaleRepository interface {
	ListByCompany(ctx context.Context, companyID int, filters domain.SaleFilters) ([]*domain.SaleRecord, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// buildSalesQuery monta a consulta das vendas de uma empresa, sempre ordenada por data e id
func buildSalesQuery(companyID int, filters domain.SaleFilters) squirrel.SelectBuilder {
	queryBuilder := squirrel.
		Select(
			"s.id",
			"COALESCE(s.product_id, 0)",
			"COALESCE(s.user_id, 0)",
			"s.company_id",
			"COALESCE(s.amount, 0)",
			"COALESCE(s.quantity, 0)",
			"s.date",
			"COALESCE(s.customer_name, '')",
			"s.region",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.company_id": companyID}).
		OrderBy("s.date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"s.date": *filters.StartDate})
	}

	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"s.date": *filters.EndDate})
	}

	if filters.UserID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"s.user_id": *filters.UserID})
	}

	return queryBuilder
}

func (r *saleRepository) ListByCompany(ctx context.Context, companyID int, filters domain.SaleFilters) ([]*domain.SaleRecord, error) {
	salesSQL, salesArgs, err := buildSalesQuery(companyID, filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, salesSQL, salesArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		var sale domain.SaleRecord
		var region sql.NullString
		if err := rows.Scan(
			&sale.ID,
			&sale.ProductID,
			&sale.UserID,
			&sale.CompanyID,
			&sale.Amount,
			&sale.Quantity,
			&sale.Date,
			&sale.CustomerName,
			&region,
		); err != nil {
			return nil, fmt.Errorf("erro ao processar venda: %w", err)
		}

		if region.Valid {
			sale.Region = &region.String
		}

		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}
