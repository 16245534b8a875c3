package domain

import "time"

// Classes da análise ABC
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"
)

// Segmentos da análise RFM, na ordem em que as regras são avaliadas
const (
	SegmentChampion     = "Champion"
	SegmentLoyal        = "Loyal"
	SegmentAtRisk       = "At Risk"
	SegmentNewPromising = "New/Promising"
	SegmentLost         = "Lost"
	SegmentRegular      = "Regular"
)

const (
	GrowthPositive = "Positive"
	GrowthNegative = "Negative"
)

type ForecastStatus string

const (
	ForecastStatusOK            ForecastStatus = "ok"
	ForecastStatusNotEnoughData ForecastStatus = "not_enough_data"
)

// ProductClassification é o resultado da análise ABC para um produto
type ProductClassification struct {
	ProductID       int     `json:"product_id"`
	Name            string  `json:"name"`
	Revenue         float64 `json:"amount"`
	CumulativeShare float64 `json:"cumulative_share"`
	Class           string  `json:"class"`
}

// CustomerSegment é o resultado da análise RFM para um cliente
type CustomerSegment struct {
	CustomerName string  `json:"customer_name"`
	Recency      int     `json:"recency"`
	Frequency    int     `json:"frequency"`
	Monetary     float64 `json:"monetary"`
	Segment      string  `json:"segment"`
}

type ExecutiveKPI struct {
	RunRate             float64 `json:"run_rate"`
	ActiveSalesmenRatio float64 `json:"active_salesmen_ratio"`
	// TopMoverID nunca é calculado, permanece nulo
	TopMoverID *int `json:"top_mover_id"`
}

// ConsistencyScore mede a variação diária das vendas de um vendedor.
// Quanto menor o CV, mais consistente.
type ConsistencyScore struct {
	UserID int     `json:"user_id"`
	Name   string  `json:"name"`
	Std    float64 `json:"std"`
	Mean   float64 `json:"mean"`
	Count  int     `json:"count"`
	CV     float64 `json:"cv"`
}

type ForecastPoint struct {
	Date         string  `json:"date"` // Início do mês, formato yyyy-mm-dd
	Amount       float64 `json:"amount"`
	IsPrediction bool    `json:"is_prediction"`
}

type ForecastSummary struct {
	Message                string  `json:"message,omitempty"`
	TotalHistoricalRevenue float64 `json:"total_historical_revenue"`
	AverageMonthlySales    float64 `json:"average_monthly_sales"`
	PredictedGrowth        string  `json:"predicted_growth,omitempty"`
}

type Forecast struct {
	Status   ForecastStatus  `json:"status"`
	History  []ForecastPoint `json:"history"`
	Forecast []ForecastPoint `json:"forecast"`
	Summary  ForecastSummary `json:"summary"`
}

// KPIDigest é a mensagem publicada pelo agendador de KPIs executivos
type KPIDigest struct {
	RunID       string       `json:"run_id"`
	CompanyID   int          `json:"company_id"`
	CompanyName string       `json:"company_name"`
	GeneratedAt time.Time    `json:"generated_at"`
	KPI         ExecutiveKPI `json:"kpi"`
}
