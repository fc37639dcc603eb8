package cashflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func TestMarkPaid(t *testing.T) {
	today := date(2024, 3, 15)
	open := entry("1", date(2024, 3, 20), domain.EntryTypeOutflow, "10", domain.EntryStatusDue)
	require.Equal(t, domain.ClassificationOpen, Classify(open, today))

	paid, err := MarkPaid(open, today)
	require.NoError(t, err)

	assert.Equal(t, domain.EntryStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidDate)
	assert.Equal(t, "2024-03-15", paid.PaidDate.String())
	assert.Equal(t, domain.ClassificationPaid, Classify(paid, today))

	// Depois de pago, a data de vencimento deixa de importar
	paid.Date = date(2020, 1, 1)
	assert.Equal(t, domain.ClassificationPaid, Classify(paid, today))
	assert.NoError(t, Validate(paid))

	// O original não é alterado
	assert.Equal(t, domain.EntryStatusDue, open.Status)
	assert.Nil(t, open.PaidDate)
}

func TestMarkPaid_Errors(t *testing.T) {
	paid := entry("1", date(2024, 3, 1), domain.EntryTypeOutflow, "10", domain.EntryStatusPaid)
	_, err := MarkPaid(paid, date(2024, 3, 15))
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	open := entry("2", date(2024, 3, 1), domain.EntryTypeOutflow, "10", domain.EntryStatusDue)
	_, err = MarkPaid(open, domain.Date{})
	assert.ErrorIs(t, err, ErrMissingPaidDate)
}
