package cashflow

import (
	"strings"

	"github.com/vfg2006/cash-position-api/internal/domain"
)

// Validate rejeita lançamentos malformados em vez de propagar valores inválidos
func Validate(entry domain.Entry) error {
	if entry.Date.IsZero() {
		return newValidationError("date", "data é obrigatória")
	}
	if entry.Amount.IsNegative() {
		return newValidationError("amount", "valor não pode ser negativo")
	}
	if !entry.Type.IsValid() {
		return newValidationError("type", "tipo deve ser Entrada ou Saida")
	}
	if !entry.Status.IsValid() {
		return newValidationError("status", "status deve ser A Vencer ou Pago")
	}
	if entry.Unit != "" && !entry.Unit.IsKnown() {
		return newValidationError("unit", "unidade desconhecida")
	}
	if entry.IsPaid() && (entry.PaidDate == nil || entry.PaidDate.IsZero()) {
		return newValidationError("paid_date", "lançamento pago exige data de pagamento")
	}
	if !entry.IsPaid() && entry.PaidDate != nil {
		return newValidationError("paid_date", "data de pagamento só pode ser informada para lançamentos pagos")
	}
	return nil
}

// ValidateNew aplica as regras do cadastro de lançamentos: além de Validate,
// exige contraparte, descrição, unidade e valor positivo.
func ValidateNew(entry domain.Entry) error {
	if err := Validate(entry); err != nil {
		return err
	}
	if strings.TrimSpace(entry.Counterparty) == "" {
		return newValidationError("counterparty", "cliente/fornecedor é obrigatório")
	}
	if strings.TrimSpace(entry.Description) == "" {
		return newValidationError("description", "descrição é obrigatória")
	}
	if entry.Unit == "" {
		return newValidationError("unit", "unidade é obrigatória")
	}
	if !entry.Amount.IsPositive() {
		return newValidationError("amount", "valor deve ser maior que zero")
	}
	return nil
}

// ValidateAll valida uma lista inteira e devolve todos os lançamentos inválidos
func ValidateAll(entries []domain.Entry) error {
	var invalid InvalidEntriesError
	for _, entry := range entries {
		if err := Validate(entry); err != nil {
			invalid.IDs = append(invalid.IDs, entry.ID)
			invalid.Errors = append(invalid.Errors, err)
		}
	}
	if len(invalid.IDs) == 0 {
		return nil
	}
	return &invalid
}
