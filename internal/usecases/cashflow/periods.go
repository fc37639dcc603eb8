package cashflow

import "github.com/vfg2006/cash-position-api/internal/domain"

// Competences lista as competências entre a menor e a maior data, da mais
// recente para a mais antiga. Sem lançamentos, retorna apenas o mês de hoje.
func Competences(first, last *domain.Date, today domain.Date) domain.AvailablePeriods {
	if first == nil || last == nil || first.IsZero() || last.IsZero() {
		current := today.MonthOf().String()
		return domain.AvailablePeriods{Periods: []string{current}, Current: current}
	}

	if last.Before(*first) {
		first, last = last, first
	}

	start := first.MonthOf()
	end := last.MonthOf()

	periods := make([]string, 0)
	for m := end; !m.Before(start); m = m.AddMonths(-1) {
		periods = append(periods, m.String())
	}

	return domain.AvailablePeriods{Periods: periods, Current: periods[0]}
}

// MonthRange retorna o primeiro e o último dia de uma competência
func MonthRange(month domain.Month) (domain.Date, domain.Date) {
	return month.FirstDay(), month.LastDay()
}
