package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportedStatus é o status atribuído na importação das planilhas
type ImportedStatus string

const (
	ImportedStatusOpen ImportedStatus = "aberto"
	// Conta a pagar com vencimento passado
	ImportedStatusExpired ImportedStatus = "vencido"
	// Conta a receber com vencimento passado
	ImportedStatusLate ImportedStatus = "atrasado"
)

// ImportedEntry é uma linha importada das planilhas de pagamentos ou recebimentos
type ImportedEntry struct {
	ExternalID   string          `json:"external_id"`
	Type         EntryType       `json:"type"`
	Counterparty string          `json:"counterparty"`
	Installment  string          `json:"installment,omitempty"`
	DueDate      Date            `json:"due_date"`
	Amount       decimal.Decimal `json:"amount"`
	Status       ImportedStatus  `json:"status"`
	ImportedAt   time.Time       `json:"imported_at"`
}

// ImportSnapshot é o resultado da última importação
type ImportSnapshot struct {
	Payments        []ImportedEntry `json:"payments"`
	Receipts        []ImportedEntry `json:"receipts"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	ImportedAt      time.Time       `json:"imported_at"`
}
