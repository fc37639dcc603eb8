package cashflow

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

// Totals soma os valores por classificação e por unidade.
// Todas as unidades conhecidas e o grupo "não informada" aparecem, mesmo zeradas.
func Totals(entries []domain.Entry, today domain.Date) domain.Totals {
	totals := domain.Totals{
		GrandTotal: decimal.Zero,
		ByStatus: domain.StatusTotals{
			Open:    decimal.Zero,
			Overdue: decimal.Zero,
			Paid:    decimal.Zero,
		},
		ByUnit: emptyUnitTotals(),
	}

	for _, entry := range entries {
		totals.GrandTotal = totals.GrandTotal.Add(entry.Amount)

		switch Classify(entry, today) {
		case domain.ClassificationPaid:
			totals.ByStatus.Paid = totals.ByStatus.Paid.Add(entry.Amount)
		case domain.ClassificationOverdue:
			totals.ByStatus.Overdue = totals.ByStatus.Overdue.Add(entry.Amount)
		default:
			totals.ByStatus.Open = totals.ByStatus.Open.Add(entry.Amount)
		}

		unit := entry.Unit
		if unit == "" {
			unit = domain.UnitUnspecified
		}
		totals.ByUnit[unit] = totals.ByUnit[unit].Add(entry.Amount)
	}

	return totals
}

func emptyUnitTotals() map[domain.Unit]decimal.Decimal {
	byUnit := make(map[domain.Unit]decimal.Decimal, len(domain.Units)+1)
	for _, unit := range domain.Units {
		byUnit[unit] = decimal.Zero
	}
	byUnit[domain.UnitUnspecified] = decimal.Zero
	return byUnit
}
