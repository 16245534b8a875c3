package domain

import "time"

// SaleRecord representa uma venda registrada por um vendedor de uma empresa (tenant)
type SaleRecord struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	UserID       int       `json:"user_id"`
	CompanyID    int       `json:"company_id"`
	Amount       float64   `json:"amount"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	CustomerName string    `json:"customer_name"` // Nome livre do cliente, usado como identidade
	Region       *string   `json:"region"`
}

// SaleFilters restringe as vendas buscadas para uma empresa
type SaleFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	UserID    *int
}
