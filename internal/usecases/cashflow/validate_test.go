package cashflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func TestValidate(t *testing.T) {
	valid := entry("1", date(2024, 3, 1), domain.EntryTypeOutflow, "10", domain.EntryStatusDue)
	valid.Unit = domain.UnitCasa

	tests := []struct {
		name   string
		mutate func(e *domain.Entry)
		field  string
	}{
		{name: "Lançamento válido", mutate: func(e *domain.Entry) {}},
		{name: "Valor zero é aceito", mutate: func(e *domain.Entry) { e.Amount = dec("0") }},
		{name: "Sem unidade é aceito", mutate: func(e *domain.Entry) { e.Unit = "" }},
		{name: "Data ausente", mutate: func(e *domain.Entry) { e.Date = domain.Date{} }, field: "date"},
		{name: "Valor negativo", mutate: func(e *domain.Entry) { e.Amount = dec("-0.01") }, field: "amount"},
		{name: "Tipo desconhecido", mutate: func(e *domain.Entry) { e.Type = "Transferencia" }, field: "type"},
		{name: "Status desconhecido", mutate: func(e *domain.Entry) { e.Status = "Cancelado" }, field: "status"},
		{name: "Unidade desconhecida", mutate: func(e *domain.Entry) { e.Unit = "Filial Centro" }, field: "unit"},
		{name: "Pago sem data de pagamento", mutate: func(e *domain.Entry) { e.Status = domain.EntryStatusPaid }, field: "paid_date"},
		{name: "A vencer com data de pagamento", mutate: func(e *domain.Entry) { e.PaidDate = datePtr(2024, 3, 2) }, field: "paid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)

			err := Validate(e)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidEntry)
			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.field, verr.Field)
			}
		})
	}
}

func TestValidateNew(t *testing.T) {
	valid := entry("", date(2024, 3, 1), domain.EntryTypeInflow, "150", domain.EntryStatusDue)
	valid.Unit = domain.UnitMangaratiba

	tests := []struct {
		name   string
		mutate func(e *domain.Entry)
		field  string
	}{
		{name: "Cadastro completo", mutate: func(e *domain.Entry) {}},
		{name: "Observação é opcional", mutate: func(e *domain.Entry) { e.Notes = "" }},
		{name: "Sem contraparte", mutate: func(e *domain.Entry) { e.Counterparty = "  " }, field: "counterparty"},
		{name: "Sem descrição", mutate: func(e *domain.Entry) { e.Description = "" }, field: "description"},
		{name: "Sem unidade", mutate: func(e *domain.Entry) { e.Unit = "" }, field: "unit"},
		{name: "Valor zero", mutate: func(e *domain.Entry) { e.Amount = dec("0") }, field: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)

			err := ValidateNew(e)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Equal(t, tt.field, verr.Field)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	ok := entry("ok", date(2024, 3, 1), domain.EntryTypeInflow, "1", domain.EntryStatusDue)
	bad := entry("ruim", domain.Date{}, domain.EntryTypeInflow, "1", domain.EntryStatusDue)

	assert.NoError(t, ValidateAll([]domain.Entry{ok}))

	err := ValidateAll([]domain.Entry{ok, bad})
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "ruim")
}

func TestValidateAll_ReportsEveryInvalidEntry(t *testing.T) {
	ok := entry("ok", date(2024, 3, 1), domain.EntryTypeInflow, "1", domain.EntryStatusDue)
	semData := entry("sem-data", domain.Date{}, domain.EntryTypeInflow, "1", domain.EntryStatusDue)
	valorNegativo := entry("valor-negativo", date(2024, 3, 2), domain.EntryTypeOutflow, "-5", domain.EntryStatusDue)

	err := ValidateAll([]domain.Entry{semData, ok, valorNegativo})

	var invalid *InvalidEntriesError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"sem-data", "valor-negativo"}, invalid.IDs)
	assert.Len(t, invalid.Errors, 2)
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "sem-data")
	assert.Contains(t, err.Error(), "valor-negativo")
}
