package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivableSummary resume as contas a receber
type ReceivableSummary struct {
	Open     decimal.Decimal `json:"open"`
	Overdue  decimal.Decimal `json:"overdue"`
	Received decimal.Decimal `json:"received"`
}

// PayableSummary resume as contas a pagar
type PayableSummary struct {
	Open    decimal.Decimal `json:"open"`
	Overdue decimal.Decimal `json:"overdue"`
	Paid    decimal.Decimal `json:"paid"`
}

// MonthlyForecast soma os valores a vencer de um mês do gráfico
type MonthlyForecast struct {
	Month      string          `json:"month"`
	Label      string          `json:"label"`
	Payable    decimal.Decimal `json:"payable"`
	Receivable decimal.Decimal `json:"receivable"`
}

// DashboardSummary contém os cards e o gráfico do painel
type DashboardSummary struct {
	ReferenceDate  Date              `json:"reference_date"`
	Receivable     ReceivableSummary `json:"receivable"`
	Payable        PayableSummary    `json:"payable"`
	ForecastResult decimal.Decimal   `json:"forecast_result"`
	Chart          []MonthlyForecast `json:"chart"`
	GeneratedAt    time.Time         `json:"generated_at"`
}
