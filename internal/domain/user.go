package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de usuário
const (
	RoleManager  = "manager"
	RoleSalesman = "salesman"
)

type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CompanyID    int       `json:"company_id"`
	SalesTarget  *int      `json:"sales_target"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsSalesman indica se o usuário é um vendedor
func (u *User) IsSalesman() bool {
	return u.Role == RoleSalesman
}

type Claims struct {
	UserID      int
	UserName    string
	UserEmail   string
	UserRole    string
	UserCompany int
	jwt.RegisteredClaims
}

// Scope retorna o escopo de análise permitido para o usuário autenticado.
// Vendedores enxergam apenas as próprias vendas.
func (c *Claims) Scope() AnalyticsScope {
	scope := AnalyticsScope{CompanyID: c.UserCompany, RequesterID: c.UserID}
	if c.UserRole == RoleSalesman {
		userID := c.UserID
		scope.UserID = &userID
	}
	return scope
}

// AnalyticsScope delimita os registros considerados por uma análise
type AnalyticsScope struct {
	CompanyID   int
	UserID      *int // Quando definido, considera apenas as vendas deste vendedor
	RequesterID int
}
