package cashflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/cash-position-api/internal/domain"
)

// Apply filtra os lançamentos e ordena por data ascendente.
// A ordem relativa de lançamentos com a mesma data é preservada.
func Apply(entries []domain.Entry, filters domain.EntryFilters, today domain.Date) []domain.Entry {
	out := filter(entries, filters, today)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// ApplyReport filtra e ordena pelo campo e direção escolhidos no relatório de contas
func ApplyReport(entries []domain.Entry, filters domain.EntryFilters, opts domain.SortOptions, today domain.Date) ([]domain.Entry, error) {
	if opts.Field == "" {
		opts.Field = domain.SortByDate
	}
	if !opts.Field.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSortField, opts.Field)
	}

	out := filter(entries, filters, today)
	desc := opts.Direction == domain.SortDescending

	sort.SliceStable(out, func(i, j int) bool {
		c := compareBy(opts.Field, out[i], out[j], today)
		if desc {
			return c > 0
		}
		return c < 0
	})

	return out, nil
}

func filter(entries []domain.Entry, filters domain.EntryFilters, today domain.Date) []domain.Entry {
	counterparty := strings.ToLower(strings.TrimSpace(filters.Counterparty))
	unit, filterUnit := filters.UnitFilter()

	out := make([]domain.Entry, 0, len(entries))
	for _, entry := range entries {
		if filters.Type != nil && entry.Type != *filters.Type {
			continue
		}
		if counterparty != "" && !strings.Contains(strings.ToLower(entry.Counterparty), counterparty) {
			continue
		}
		if filters.Classification != nil && Classify(entry, today) != *filters.Classification {
			continue
		}
		if filterUnit && entry.Unit != unit {
			continue
		}
		if filters.From != nil && entry.Date.Before(*filters.From) {
			continue
		}
		if filters.To != nil && entry.Date.After(*filters.To) {
			continue
		}
		out = append(out, entry)
	}

	return out
}

// compareBy retorna -1, 0 ou 1. Valores são comparados numericamente.
func compareBy(field domain.SortField, a, b domain.Entry, today domain.Date) int {
	switch field {
	case domain.SortByAmount:
		return a.Amount.Cmp(b.Amount)
	case domain.SortByType:
		return strings.Compare(string(a.Type), string(b.Type))
	case domain.SortByCounterparty:
		return strings.Compare(strings.ToLower(a.Counterparty), strings.ToLower(b.Counterparty))
	case domain.SortByDescription:
		return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	case domain.SortByStatus:
		return strings.Compare(string(Classify(a, today)), string(Classify(b, today)))
	case domain.SortByUnit:
		return strings.Compare(string(a.Unit), string(b.Unit))
	case domain.SortByPaidDate:
		return compareDates(a.PaidDate, b.PaidDate)
	default:
		return compareDates(&a.Date, &b.Date)
	}
}

// compareDates ordena datas ausentes antes das presentes
func compareDates(a, b *domain.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
