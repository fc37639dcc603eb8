package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func TestClassify(t *testing.T) {
	today := date(2024, 3, 15)

	tests := []struct {
		name     string
		entry    domain.Entry
		expected domain.Classification
	}{
		{
			name:     "Pago com data passada continua pago",
			entry:    entry("1", date(2024, 1, 10), domain.EntryTypeOutflow, "10", domain.EntryStatusPaid),
			expected: domain.ClassificationPaid,
		},
		{
			name:     "Pago com data futura continua pago",
			entry:    entry("2", date(2024, 5, 10), domain.EntryTypeInflow, "10", domain.EntryStatusPaid),
			expected: domain.ClassificationPaid,
		},
		{
			name:     "A vencer com data passada é vencido",
			entry:    entry("3", date(2024, 3, 14), domain.EntryTypeOutflow, "10", domain.EntryStatusDue),
			expected: domain.ClassificationOverdue,
		},
		{
			name:     "A vencer com vencimento hoje está em aberto",
			entry:    entry("4", date(2024, 3, 15), domain.EntryTypeOutflow, "10", domain.EntryStatusDue),
			expected: domain.ClassificationOpen,
		},
		{
			name:     "A vencer com data futura está em aberto",
			entry:    entry("5", date(2024, 3, 16), domain.EntryTypeInflow, "10", domain.EntryStatusDue),
			expected: domain.ClassificationOpen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.entry, today))
		})
	}
}

func TestClassify_IgnoresPaidDate(t *testing.T) {
	today := date(2024, 3, 15)

	// Data de pagamento inconsistente não altera a classificação de um lançamento a vencer
	e := entry("1", date(2024, 3, 20), domain.EntryTypeOutflow, "10", domain.EntryStatusDue)
	e.PaidDate = datePtr(2024, 1, 1)

	assert.Equal(t, domain.ClassificationOpen, Classify(e, today))
}

func TestAnnotate_Labels(t *testing.T) {
	today := date(2024, 3, 15)
	entries := []domain.Entry{
		entry("rec", date(2024, 3, 1), domain.EntryTypeInflow, "10", domain.EntryStatusDue),
		entry("pag", date(2024, 3, 1), domain.EntryTypeOutflow, "10", domain.EntryStatusDue),
		entry("aberto", date(2024, 3, 20), domain.EntryTypeOutflow, "10", domain.EntryStatusDue),
		entry("pago", date(2024, 3, 1), domain.EntryTypeOutflow, "10", domain.EntryStatusPaid),
	}

	annotated := Annotate(entries, today)

	assert.Len(t, annotated, 4)
	assert.Equal(t, "Atrasado", annotated[0].Label)
	assert.Equal(t, "Vencido", annotated[1].Label)
	assert.Equal(t, "Em Aberto", annotated[2].Label)
	assert.Equal(t, "Pago", annotated[3].Label)
	assert.Equal(t, domain.ClassificationOverdue, annotated[0].Classification)
}
