package cashflow

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

func date(year int, month int, day int) domain.Date {
	return domain.NewDate(year, time.Month(month), day)
}

func datePtr(year int, month int, day int) *domain.Date {
	d := date(year, month, day)
	return &d
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "esperado %s, obtido %s %v", expected, actual.String(), msgAndArgs)
}

func entry(id string, d domain.Date, entryType domain.EntryType, amount string, status domain.EntryStatus) domain.Entry {
	e := domain.Entry{
		ID:           id,
		Date:         d,
		Type:         entryType,
		Counterparty: "Fornecedor " + id,
		Description:  "Lançamento " + id,
		Amount:       dec(amount),
		Status:       status,
	}
	if status == domain.EntryStatusPaid {
		paid := d
		e.PaidDate = &paid
	}
	return e
}

func ids(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
