package cashflow

import "github.com/vfg2006/cash-position-api/internal/domain"

// MarkPaid baixa o lançamento na data informada.
// Não existe estorno: um lançamento pago não pode ser baixado de novo.
func MarkPaid(entry domain.Entry, paidDate domain.Date) (domain.Entry, error) {
	if entry.IsPaid() {
		return entry, ErrAlreadyPaid
	}
	if paidDate.IsZero() {
		return entry, ErrMissingPaidDate
	}

	paid := entry
	paid.Status = domain.EntryStatusPaid
	paid.PaidDate = &paidDate

	return paid, nil
}
