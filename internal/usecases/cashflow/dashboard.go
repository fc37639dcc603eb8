package cashflow

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

// Janela do gráfico do painel: mês anterior até quatro meses à frente
const (
	chartFirstOffset = -1
	chartLastOffset  = 4
)

// Dashboard monta os cards do painel e o gráfico de valores a vencer por mês
func Dashboard(entries []domain.Entry, today domain.Date) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		ReferenceDate: today,
		Receivable: domain.ReceivableSummary{
			Open:     decimal.Zero,
			Overdue:  decimal.Zero,
			Received: decimal.Zero,
		},
		Payable: domain.PayableSummary{
			Open:    decimal.Zero,
			Overdue: decimal.Zero,
			Paid:    decimal.Zero,
		},
	}

	dueInflows := decimal.Zero
	dueOutflows := decimal.Zero

	for _, entry := range entries {
		classification := Classify(entry, today)

		if entry.Type == domain.EntryTypeInflow {
			switch classification {
			case domain.ClassificationPaid:
				summary.Receivable.Received = summary.Receivable.Received.Add(entry.Amount)
			case domain.ClassificationOverdue:
				summary.Receivable.Overdue = summary.Receivable.Overdue.Add(entry.Amount)
			default:
				summary.Receivable.Open = summary.Receivable.Open.Add(entry.Amount)
			}
			if !entry.IsPaid() {
				dueInflows = dueInflows.Add(entry.Amount)
			}
			continue
		}

		switch classification {
		case domain.ClassificationPaid:
			summary.Payable.Paid = summary.Payable.Paid.Add(entry.Amount)
		case domain.ClassificationOverdue:
			summary.Payable.Overdue = summary.Payable.Overdue.Add(entry.Amount)
		default:
			summary.Payable.Open = summary.Payable.Open.Add(entry.Amount)
		}
		if !entry.IsPaid() {
			dueOutflows = dueOutflows.Add(entry.Amount)
		}
	}

	summary.ForecastResult = dueInflows.Sub(dueOutflows)
	summary.Chart = forecastChart(entries, today.MonthOf())

	return summary
}

func forecastChart(entries []domain.Entry, current domain.Month) []domain.MonthlyForecast {
	chart := make([]domain.MonthlyForecast, 0, chartLastOffset-chartFirstOffset+1)
	for offset := chartFirstOffset; offset <= chartLastOffset; offset++ {
		month := current.AddMonths(offset)
		point := domain.MonthlyForecast{
			Month:      month.String(),
			Label:      month.Label(),
			Payable:    decimal.Zero,
			Receivable: decimal.Zero,
		}

		for _, entry := range entries {
			if entry.IsPaid() || !month.Contains(entry.Date) {
				continue
			}
			if entry.Type == domain.EntryTypeInflow {
				point.Receivable = point.Receivable.Add(entry.Amount)
			} else {
				point.Payable = point.Payable.Add(entry.Amount)
			}
		}

		chart = append(chart, point)
	}
	return chart
}
