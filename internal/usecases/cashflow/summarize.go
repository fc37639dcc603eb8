package cashflow

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

// costKeyword identifica, nas observações, as saídas classificadas como custo
const costKeyword = "custo"

// Summarize calcula o DRE gerencial dos lançamentos pagos no período [start, end].
// O filtro usa a data de pagamento, não a de vencimento.
func Summarize(entries []domain.Entry, start, end domain.Date) domain.PeriodResult {
	result := domain.PeriodResult{
		Start:        start,
		End:          end,
		GrossRevenue: decimal.Zero,
		Costs:        decimal.Zero,
		Expenses:     decimal.Zero,
	}

	for _, entry := range entries {
		if !entry.IsPaid() || entry.PaidDate == nil {
			continue
		}
		if entry.PaidDate.Before(start) || entry.PaidDate.After(end) {
			continue
		}

		switch {
		case entry.Type == domain.EntryTypeInflow:
			result.GrossRevenue = result.GrossRevenue.Add(entry.Amount)
		case isCost(entry):
			result.Costs = result.Costs.Add(entry.Amount)
		default:
			result.Expenses = result.Expenses.Add(entry.Amount)
		}
	}

	result.GrossProfit = result.GrossRevenue.Sub(result.Costs)
	result.NetResult = result.GrossProfit.Sub(result.Expenses)

	return result
}

func isCost(entry domain.Entry) bool {
	return strings.Contains(strings.ToLower(entry.Notes), costKeyword)
}
