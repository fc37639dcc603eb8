package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func TestCompetences(t *testing.T) {
	today := date(2024, 3, 15)

	tests := []struct {
		name     string
		first    *domain.Date
		last     *domain.Date
		expected []string
	}{
		{
			name:     "Sem lançamentos usa o mês atual",
			expected: []string{"2024-03"},
		},
		{
			name:     "Intervalo atravessando o ano, do mais recente para o mais antigo",
			first:    datePtr(2023, 11, 20),
			last:     datePtr(2024, 2, 3),
			expected: []string{"2024-02", "2024-01", "2023-12", "2023-11"},
		},
		{
			name:     "Mesmo mês",
			first:    datePtr(2024, 5, 1),
			last:     datePtr(2024, 5, 31),
			expected: []string{"2024-05"},
		},
		{
			name:     "Limites invertidos",
			first:    datePtr(2024, 2, 1),
			last:     datePtr(2024, 1, 1),
			expected: []string{"2024-02", "2024-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := Competences(tt.first, tt.last, today)
			assert.Equal(t, tt.expected, periods.Periods)
			assert.Equal(t, tt.expected[0], periods.Current)
		})
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(domain.Month{Year: 2024, Month: 2})
	assert.Equal(t, "2024-02-01", start.String())
	assert.Equal(t, "2024-02-29", end.String())

	start, end = MonthRange(domain.Month{Year: 2023, Month: 12})
	assert.Equal(t, "2023-12-01", start.String())
	assert.Equal(t, "2023-12-31", end.String())
}
