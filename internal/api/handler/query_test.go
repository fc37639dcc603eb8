package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func TestParseEntryFilters(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantErr  bool
		validate func(t *testing.T, filters domain.EntryFilters)
	}{
		{
			name:  "Sem filtros",
			query: "",
			validate: func(t *testing.T, filters domain.EntryFilters) {
				assert.Equal(t, domain.EntryFilters{}, filters)
			},
		},
		{
			name:  "Status em maiúsculas",
			query: "status=PAID",
			validate: func(t *testing.T, filters domain.EntryFilters) {
				require.NotNil(t, filters.Classification)
				assert.Equal(t, domain.ClassificationPaid, *filters.Classification)
			},
		},
		{
			name:  "Intervalo de datas",
			query: "from=2024-03-01&to=2024-03-31",
			validate: func(t *testing.T, filters domain.EntryFilters) {
				require.NotNil(t, filters.From)
				require.NotNil(t, filters.To)
				assert.Equal(t, domain.NewDate(2024, 3, 1), *filters.From)
				assert.Equal(t, domain.NewDate(2024, 3, 31), *filters.To)
			},
		},
		{name: "Intervalo invertido", query: "from=2024-03-31&to=2024-03-01", wantErr: true},
		{name: "Data em formato brasileiro", query: "from=01/03/2024", wantErr: true},
		{name: "Status desconhecido", query: "status=cancelado", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			filters, err := parseEntryFilters(values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, filters)
		})
	}
}

func TestParseResultPeriod(t *testing.T) {
	today := domain.NewDate(2024, 3, 15)

	tests := []struct {
		name      string
		query     string
		wantStart domain.Date
		wantEnd   domain.Date
		wantErr   bool
	}{
		{
			name:      "Sem parâmetros usa o mês corrente",
			query:     "",
			wantStart: domain.NewDate(2024, 3, 1),
			wantEnd:   domain.NewDate(2024, 3, 31),
		},
		{
			name:      "Competência de ano bissexto",
			query:     "period=2024-02",
			wantStart: domain.NewDate(2024, 2, 1),
			wantEnd:   domain.NewDate(2024, 2, 29),
		},
		{
			name:      "Competência tem prioridade sobre start/end",
			query:     "period=2023-12&start=2024-01-01&end=2024-01-31",
			wantStart: domain.NewDate(2023, 12, 1),
			wantEnd:   domain.NewDate(2023, 12, 31),
		},
		{name: "Competência inválida", query: "period=2024-13", wantErr: true},
		{name: "Fim ausente", query: "start=2024-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			start, end, err := parseResultPeriod(values, today)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
