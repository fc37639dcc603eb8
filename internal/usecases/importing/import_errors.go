package importing

import (
	"errors"
	"fmt"
)

var (
	ErrFetchSheets   = errors.New("erro ao buscar planilhas")
	ErrSaveImported  = errors.New("erro ao salvar lançamentos importados")
	ErrNoImport      = errors.New("nenhuma importação realizada")
	ErrFetchImported = errors.New("erro ao buscar lançamentos importados")
)

// ImportError é um erro com contexto adicional para a importação
type ImportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
