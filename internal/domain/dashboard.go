package domain

import "time"

const (
	UnknownName        = "Unknown"
	UnknownProductName = "Unknown Product"
	SaleStatusDone     = "Completed"
	NotEnoughDataLabel = "Not enough data"
	TrendStable        = "Stable"
)

type DashboardSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
	SalesGrowth   float64 `json:"sales_growth"`
}

type DailySales struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}

type RecentSale struct {
	ID           int       `json:"id"`
	ProductName  string    `json:"product_name"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	SalesmanName string    `json:"salesman_name"`
	Status       string    `json:"status"`
}

type TopProduct struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TotalSold    int     `json:"total_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type AmountCount struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type SalesReport struct {
	SalesBySalesman map[string]*AmountCount `json:"sales_by_salesman"`
	SalesByProduct  map[string]*AmountCount `json:"sales_by_product"`
	SalesByMonth    map[string]float64      `json:"sales_by_month"`
}

type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	UserID          int     `json:"user_id"`
	Name            string  `json:"name"`
	Avatar          string  `json:"avatar"`
	Revenue         float64 `json:"revenue"`
	Quantity        int     `json:"quantity"`
	SalesTarget     int     `json:"sales_target"`
	AchievedPercent float64 `json:"achieved_percent"`
}

type Leaderboard struct {
	CompanyName string             `json:"company_name"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// NamedValue é um ponto de distribuição (produto ou região) usado nos gráficos
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type SalespersonKPI struct {
	TotalSales      float64 `json:"total_sales"`
	Earnings        float64 `json:"earnings"`
	Target          int     `json:"target"`
	AchievedPercent float64 `json:"achieved_percent"`
	Rank            int     `json:"rank"`
}

type SalespersonCharts struct {
	ProductDistribution []NamedValue `json:"product_distribution"`
	RegionDistribution  []NamedValue `json:"region_distribution"`
	SalesTrend          []DailySales `json:"sales_trend"`
}

type SalespersonPrediction struct {
	Message            string   `json:"message,omitempty"`
	PredictedNextMonth *float64 `json:"predicted_next_month,omitempty"`
	Trend              string   `json:"trend,omitempty"`
}

type SalespersonDashboard struct {
	KPI        SalespersonKPI        `json:"kpi"`
	Charts     SalespersonCharts     `json:"charts"`
	Prediction SalespersonPrediction `json:"prediction"`
}
