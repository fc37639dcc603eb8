package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrEntryNotFound = errors.New("lançamento não encontrado")
	ErrFetchEntries  = errors.New("erro ao buscar lançamentos")
	ErrSaveEntry     = errors.New("erro ao salvar lançamento")
	ErrGenerateID    = errors.New("erro ao gerar ID do lançamento")
)

// LedgerError é um erro com contexto adicional para lançamentos
type LedgerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	EntryID string // ID do lançamento envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func NewLedgerError(err error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewLedgerErrorWithID(err error, code string, entryID string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		EntryID: entryID,
		Details: details,
	}
}
