package cashflow

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidEntry     = errors.New("lançamento inválido")
	ErrAlreadyPaid      = errors.New("lançamento já está pago")
	ErrMissingPaidDate  = errors.New("data de pagamento não informada")
	ErrInvalidPeriod    = errors.New("período inválido")
	ErrInvalidSortField = errors.New("campo de ordenação inválido")
)

// ValidationError descreve qual campo do lançamento foi rejeitado
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidEntry.Error(), e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrInvalidEntry)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidEntry
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidEntriesError reúne todos os lançamentos rejeitados de uma lista
type InvalidEntriesError struct {
	IDs    []string
	Errors []error
}

func (e *InvalidEntriesError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = fmt.Sprintf("lançamento %s: %v", e.IDs[i], err)
	}
	return strings.Join(parts, "; ")
}

func (e *InvalidEntriesError) Unwrap() []error {
	return e.Errors
}
