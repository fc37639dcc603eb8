package domain

import "github.com/shopspring/decimal"

// StatusTotals soma os valores por classificação
type StatusTotals struct {
	Open    decimal.Decimal `json:"open"`
	Overdue decimal.Decimal `json:"overdue"`
	Paid    decimal.Decimal `json:"paid"`
}

// Totals agrega os valores de uma lista de lançamentos
type Totals struct {
	GrandTotal decimal.Decimal          `json:"grand_total"`
	ByStatus   StatusTotals             `json:"by_status"`
	ByUnit     map[Unit]decimal.Decimal `json:"by_unit"`
}

// DayBucket acumula entradas e saídas de um dia do mês projetado.
// O dia 0 concentra os lançamentos em atraso anteriores ao mês.
type DayBucket struct {
	Day            int             `json:"day"`
	Date           *Date           `json:"date,omitempty"`
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"`
	DailyBalance   decimal.Decimal `json:"daily_balance"`
	RunningBalance decimal.Decimal `json:"running_balance"`
	Entries        []Entry         `json:"entries,omitempty"`
}

// ProjectionView define se a projeção traz os lançamentos de cada dia
type ProjectionView string

const (
	ProjectionAnalytic  ProjectionView = "analytic"
	ProjectionSynthetic ProjectionView = "synthetic"
)

// Projection é o fluxo de caixa diário projetado de um mês
type Projection struct {
	Month          string          `json:"month"`
	Unit           Unit            `json:"unit,omitempty"`
	View           ProjectionView  `json:"view"`
	Buckets        []DayBucket     `json:"buckets"`
	TotalInflow    decimal.Decimal `json:"total_inflow"`
	TotalOutflow   decimal.Decimal `json:"total_outflow"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// Synthetic retorna uma cópia da projeção sem os lançamentos de cada dia
func (p Projection) Synthetic() Projection {
	out := p
	out.View = ProjectionSynthetic
	out.Buckets = make([]DayBucket, len(p.Buckets))
	for i, bucket := range p.Buckets {
		bucket.Entries = nil
		out.Buckets[i] = bucket
	}
	return out
}

// PeriodResult é o DRE gerencial de um período (regime de caixa, pela data de pagamento)
type PeriodResult struct {
	Start        Date            `json:"start"`
	End          Date            `json:"end"`
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	Costs        decimal.Decimal `json:"costs"`
	Expenses     decimal.Decimal `json:"expenses"`
	GrossProfit  decimal.Decimal `json:"gross_profit"`
	NetResult    decimal.Decimal `json:"net_result"`
}
