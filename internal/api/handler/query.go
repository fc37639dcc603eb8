package handler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/cashflow"
)

// parseEntryFilters lê os filtros de listagem da query string.
// Parâmetros ausentes não filtram.
func parseEntryFilters(query url.Values) (domain.EntryFilters, error) {
	filters := domain.EntryFilters{
		Counterparty: strings.TrimSpace(query.Get("counterparty")),
		Unit:         strings.TrimSpace(query.Get("unit")),
	}

	if value := query.Get("type"); value != "" {
		entryType := domain.EntryType(value)
		if !entryType.IsValid() {
			return filters, fmt.Errorf("tipo inválido %q: use Entrada ou Saida", value)
		}
		filters.Type = &entryType
	}

	if value := query.Get("status"); value != "" {
		classification := domain.Classification(strings.ToLower(value))
		if !classification.IsValid() {
			return filters, fmt.Errorf("status inválido %q: use open, overdue ou paid", value)
		}
		filters.Classification = &classification
	}

	for _, bound := range []struct {
		param  string
		target **domain.Date
	}{
		{"from", &filters.From},
		{"to", &filters.To},
	} {
		value := query.Get(bound.param)
		if value == "" {
			continue
		}
		date, err := domain.ParseDate(value)
		if err != nil {
			return filters, err
		}
		*bound.target = &date
	}

	if filters.From != nil && filters.To != nil && filters.To.Before(*filters.From) {
		return filters, fmt.Errorf("período inválido: %s é anterior a %s", filters.To, filters.From)
	}

	return filters, nil
}

// parseSortOptions lê sort e direction; sem parâmetros usa a ordenação padrão
func parseSortOptions(query url.Values) (domain.SortOptions, error) {
	opts := domain.DefaultSort

	if value := query.Get("sort"); value != "" {
		field := domain.SortField(value)
		if !field.IsValid() {
			return opts, fmt.Errorf("campo de ordenação inválido %q", value)
		}
		opts.Field = field
	}

	switch direction := domain.SortDirection(strings.ToLower(query.Get("direction"))); direction {
	case "":
	case domain.SortAscending, domain.SortDescending:
		opts.Direction = direction
	default:
		return opts, fmt.Errorf("direção de ordenação inválida %q: use asc ou desc", direction)
	}

	return opts, nil
}

// parseResultPeriod aceita period=yyyy-MM ou o par start/end (YYYY-MM-DD)
func parseResultPeriod(query url.Values, today domain.Date) (domain.Date, domain.Date, error) {
	if period := query.Get("period"); period != "" {
		month, err := domain.ParseMonth(period)
		if err != nil {
			return domain.Date{}, domain.Date{}, err
		}
		start, end := cashflow.MonthRange(month)
		return start, end, nil
	}

	startValue, endValue := query.Get("start"), query.Get("end")
	if startValue == "" && endValue == "" {
		start, end := cashflow.MonthRange(today.MonthOf())
		return start, end, nil
	}
	if startValue == "" || endValue == "" {
		return domain.Date{}, domain.Date{}, fmt.Errorf("informe start e end juntos")
	}

	start, err := domain.ParseDate(startValue)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	end, err := domain.ParseDate(endValue)
	if err != nil {
		return domain.Date{}, domain.Date{}, err
	}
	return start, end, nil
}
