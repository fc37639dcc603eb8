package domain

import (
	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryTypeInflow  EntryType = "Entrada"
	EntryTypeOutflow EntryType = "Saida"
)

func (t EntryType) IsValid() bool {
	return t == EntryTypeInflow || t == EntryTypeOutflow
}

// EntryStatus é o status persistido do lançamento
type EntryStatus string

const (
	EntryStatusDue  EntryStatus = "A Vencer"
	EntryStatusPaid EntryStatus = "Pago"
)

func (s EntryStatus) IsValid() bool {
	return s == EntryStatusDue || s == EntryStatusPaid
}

// Classification é o status derivado de um lançamento em relação a uma data de referência
type Classification string

const (
	ClassificationOpen    Classification = "open"
	ClassificationOverdue Classification = "overdue"
	ClassificationPaid    Classification = "paid"
)

func (c Classification) IsValid() bool {
	return c == ClassificationOpen || c == ClassificationOverdue || c == ClassificationPaid
}

// Label retorna o rótulo exibido para a classificação.
// Contas a receber vencidas são "Atrasado", contas a pagar vencidas são "Vencido".
func (c Classification) Label(entryType EntryType) string {
	switch c {
	case ClassificationPaid:
		return "Pago"
	case ClassificationOverdue:
		if entryType == EntryTypeInflow {
			return "Atrasado"
		}
		return "Vencido"
	default:
		return "Em Aberto"
	}
}

// Unit é a unidade de negócio associada ao lançamento
type Unit string

const (
	UnitAngraDosReis Unit = "CNA Angra dos Reis"
	UnitMangaratiba  Unit = "CNA Mangaratiba"
	UnitCasa         Unit = "Casa"

	// UnitUnspecified agrupa lançamentos sem unidade informada
	UnitUnspecified Unit = "Não informada"
)

// Units é a enumeração fixa de unidades de negócio
var Units = []Unit{UnitAngraDosReis, UnitMangaratiba, UnitCasa}

func (u Unit) IsKnown() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Entry representa um lançamento financeiro (tabela lancamentos)
type Entry struct {
	ID           string          `json:"id"`
	Date         Date            `json:"date"`
	Type         EntryType       `json:"type"`
	Counterparty string          `json:"counterparty"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Status       EntryStatus     `json:"status"`
	PaidDate     *Date           `json:"paid_date,omitempty"`
	Unit         Unit            `json:"unit,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// IsPaid indica se o lançamento já foi baixado
func (e Entry) IsPaid() bool {
	return e.Status == EntryStatusPaid
}

// ClassifiedEntry é um lançamento acompanhado da sua classificação derivada
type ClassifiedEntry struct {
	Entry
	Classification Classification `json:"classification"`
	Label          string         `json:"label"`
}

// CreateEntryRequest representa o corpo de criação de um lançamento
type CreateEntryRequest struct {
	Date         Date            `json:"date"`
	Type         EntryType       `json:"type"`
	Counterparty string          `json:"counterparty"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Status       EntryStatus     `json:"status"`
	PaidDate     *Date           `json:"paid_date,omitempty"`
	Unit         Unit            `json:"unit"`
	Notes        string          `json:"notes,omitempty"`
}

// ToEntry converte a requisição em um lançamento sem ID
func (r CreateEntryRequest) ToEntry() Entry {
	return Entry{
		Date:         r.Date,
		Type:         r.Type,
		Counterparty: r.Counterparty,
		Description:  r.Description,
		Amount:       r.Amount,
		Status:       r.Status,
		PaidDate:     r.PaidDate,
		Unit:         r.Unit,
		Notes:        r.Notes,
	}
}

// MarkPaidRequest representa o corpo da baixa de um lançamento
type MarkPaidRequest struct {
	PaidDate *Date `json:"paid_date,omitempty"`
}

// EntryListResponse é a resposta das listagens de lançamentos
type EntryListResponse struct {
	Filters EntryFilters      `json:"filters"`
	Entries []ClassifiedEntry `json:"entries"`
	Totals  Totals            `json:"totals"`
}
