package domain

import (
	"fmt"
	"time"
)

// MonthLayout é o formato de competência (yyyy-MM)
const MonthLayout = "2006-01"

var monthAbbreviations = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Month identifica um mês de competência
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth interpreta uma competência no formato yyyy-MM
func ParseMonth(value string) (Month, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return Month{}, fmt.Errorf("competência inválida %q: %w", value, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label retorna o rótulo curto em português (ex: "mar/2024")
func (m Month) Label() string {
	return fmt.Sprintf("%s/%d", monthAbbreviations[m.Month-1], m.Year)
}

// FirstDay retorna o primeiro dia do mês
func (m Month) FirstDay() Date {
	return NewDate(m.Year, m.Month, 1)
}

// LastDay retorna o último dia do mês
func (m Month) LastDay() Date {
	return m.AddMonths(1).FirstDay().AddDays(-1)
}

// Days retorna a quantidade de dias do mês
func (m Month) Days() int {
	return m.LastDay().Day()
}

// AddMonths desloca a competência em n meses
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains indica se a data pertence ao mês
func (m Month) Contains(d Date) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// Before indica se o mês é anterior a outro
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// AvailablePeriods representa as competências disponíveis para o DRE
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de competências no formato yyyy-MM, da mais recente para a mais antiga
	Current string   `json:"current"` // Competência sugerida (a mais recente)
}
