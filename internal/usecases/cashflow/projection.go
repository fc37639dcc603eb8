package cashflow

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

// Project monta o fluxo de caixa diário de um mês.
//
// Só entram lançamentos não pagos. O dia 0 recebe os vencidos antes do
// primeiro dia do mês; cada dia do mês tem seu próprio balde, mesmo vazio.
// Lançamentos de meses posteriores ficam de fora. O saldo acumulado começa
// em zero antes do dia 0.
func Project(entries []domain.Entry, month domain.Month, unit string) domain.Projection {
	firstDay := month.FirstDay()
	days := month.Days()
	unitFilter, filterUnit := domain.UnitFilterOf(unit)

	buckets := make([]domain.DayBucket, days+1)
	for day := 0; day <= days; day++ {
		bucket := domain.DayBucket{
			Day:     day,
			Inflow:  decimal.Zero,
			Outflow: decimal.Zero,
		}
		if day > 0 {
			date := domain.NewDate(month.Year, month.Month, day)
			bucket.Date = &date
		}
		buckets[day] = bucket
	}

	for _, entry := range entries {
		if entry.IsPaid() {
			continue
		}
		if filterUnit && entry.Unit != unitFilter {
			continue
		}

		var day int
		switch {
		case entry.Date.Before(firstDay):
			day = 0
		case month.Contains(entry.Date):
			day = entry.Date.Day()
		default:
			continue
		}

		bucket := &buckets[day]
		if entry.Type == domain.EntryTypeInflow {
			bucket.Inflow = bucket.Inflow.Add(entry.Amount)
		} else {
			bucket.Outflow = bucket.Outflow.Add(entry.Amount)
		}
		bucket.Entries = append(bucket.Entries, entry)
	}

	projection := domain.Projection{
		Month:        month.String(),
		View:         domain.ProjectionAnalytic,
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
	}
	if filterUnit {
		projection.Unit = unitFilter
	}

	running := decimal.Zero
	for i := range buckets {
		bucket := &buckets[i]
		bucket.DailyBalance = bucket.Inflow.Sub(bucket.Outflow)
		running = running.Add(bucket.DailyBalance)
		bucket.RunningBalance = running

		projection.TotalInflow = projection.TotalInflow.Add(bucket.Inflow)
		projection.TotalOutflow = projection.TotalOutflow.Add(bucket.Outflow)
	}

	projection.Buckets = buckets
	projection.ClosingBalance = running

	return projection
}
