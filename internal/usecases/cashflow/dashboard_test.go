package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func TestDashboard(t *testing.T) {
	today := date(2024, 3, 15)
	entries := []domain.Entry{
		entry("rec-aberto", date(2024, 3, 15), domain.EntryTypeInflow, "100", domain.EntryStatusDue),
		entry("rec-atrasado", date(2024, 3, 1), domain.EntryTypeInflow, "40", domain.EntryStatusDue),
		entry("rec-recebido", date(2024, 3, 2), domain.EntryTypeInflow, "500", domain.EntryStatusPaid),
		entry("pag-aberto", date(2024, 4, 10), domain.EntryTypeOutflow, "70", domain.EntryStatusDue),
		entry("pag-vencido", date(2024, 2, 10), domain.EntryTypeOutflow, "30", domain.EntryStatusDue),
		entry("pag-pago", date(2024, 3, 3), domain.EntryTypeOutflow, "200", domain.EntryStatusPaid),
		entry("fora-janela", date(2024, 9, 1), domain.EntryTypeOutflow, "1000", domain.EntryStatusDue),
	}

	summary := Dashboard(entries, today)

	assertDecimal(t, "100", summary.Receivable.Open)
	assertDecimal(t, "40", summary.Receivable.Overdue)
	assertDecimal(t, "500", summary.Receivable.Received)
	assertDecimal(t, "1070", summary.Payable.Open)
	assertDecimal(t, "30", summary.Payable.Overdue)
	assertDecimal(t, "200", summary.Payable.Paid)

	// Resultado previsto: entradas a vencer menos saídas a vencer
	assertDecimal(t, "-960", summary.ForecastResult)

	require.Len(t, summary.Chart, 6)
	assert.Equal(t, "2024-02", summary.Chart[0].Month)
	assert.Equal(t, "fev/2024", summary.Chart[0].Label)
	assert.Equal(t, "2024-07", summary.Chart[5].Month)

	assertDecimal(t, "30", summary.Chart[0].Payable)
	assertDecimal(t, "140", summary.Chart[1].Receivable)
	assertDecimal(t, "0", summary.Chart[1].Payable)
	assertDecimal(t, "70", summary.Chart[2].Payable)
	assertDecimal(t, "0", summary.Chart[5].Payable)
}

func TestDashboard_ChartCrossesYear(t *testing.T) {
	summary := Dashboard(nil, date(2024, 12, 5))

	months := make([]string, 0, len(summary.Chart))
	for _, point := range summary.Chart {
		months = append(months, point.Month)
	}

	assert.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-02", "2025-03", "2025-04"}, months)
}
