package domain

import "strings"

// Valores de unidade que significam "sem filtro de unidade"
var allUnitsValues = []string{"", "todas", "all"}

// EntryFilters agrupa os filtros opcionais das listagens (combinados com E lógico)
type EntryFilters struct {
	Type           *EntryType      `json:"type,omitempty"`
	Counterparty   string          `json:"counterparty,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	From           *Date           `json:"from,omitempty"`
	To             *Date           `json:"to,omitempty"`
}

// UnitFilter retorna a unidade filtrada e se o filtro está ativo
func (f EntryFilters) UnitFilter() (Unit, bool) {
	return UnitFilterOf(f.Unit)
}

// UnitFilterOf interpreta um valor de unidade vindo de filtros
func UnitFilterOf(value string) (Unit, bool) {
	trimmed := strings.TrimSpace(value)
	for _, all := range allUnitsValues {
		if strings.EqualFold(trimmed, all) {
			return "", false
		}
	}
	return Unit(trimmed), true
}

type SortField string

const (
	SortByDate         SortField = "date"
	SortByType         SortField = "type"
	SortByCounterparty SortField = "counterparty"
	SortByDescription  SortField = "description"
	SortByAmount       SortField = "amount"
	SortByStatus       SortField = "status"
	SortByUnit         SortField = "unit"
	SortByPaidDate     SortField = "paid_date"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByDate, SortByType, SortByCounterparty, SortByDescription,
		SortByAmount, SortByStatus, SortByUnit, SortByPaidDate:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Toggle inverte a direção da ordenação
func (d SortDirection) Toggle() SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// SortOptions define a ordenação do relatório de contas
type SortOptions struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort é a ordenação padrão: data ascendente
var DefaultSort = SortOptions{Field: SortByDate, Direction: SortAscending}
