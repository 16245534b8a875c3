package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	companiesTable = "companies"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, companyID int) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
}

type companyRepository struct {
	conn postgres.Queryer
}

func NewCompanyRepository(conn postgres.Queryer) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

// GetByID retorna nil, nil quando a empresa não existe
func (r *companyRepository) GetByID(ctx context.Context, companyID int) (*domain.Company, error) {
	query, args, err := squirrel.
		Select("id", "COALESCE(name, '')").
		From(companiesTable).
		Where(squirrel.Eq{"id": companyID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var company domain.Company
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&company.ID, &company.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar empresa: %w", err)
	}

	return &company, nil
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	query, args, err := squirrel.
		Select("id", "COALESCE(name, '')").
		From(companiesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar empresas: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(&company.ID, &company.Name); err != nil {
			return nil, fmt.Errorf("erro ao processar empresa: %w", err)
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return companies, nil
}
