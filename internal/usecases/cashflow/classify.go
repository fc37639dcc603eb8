// Package cashflow contém o motor de posição de caixa: classificação,
// filtros, totais, projeção diária e DRE. Todas as funções são puras e
// operam sobre listas de lançamentos já carregadas.
package cashflow

import "github.com/vfg2006/cash-position-api/internal/domain"

// Classify deriva a classificação do lançamento em relação a hoje.
// Apenas status e data de vencimento são considerados; a data de pagamento não.
func Classify(entry domain.Entry, today domain.Date) domain.Classification {
	if entry.IsPaid() {
		return domain.ClassificationPaid
	}

	if entry.Date.Before(today) {
		return domain.ClassificationOverdue
	}

	return domain.ClassificationOpen
}

// Annotate anexa classificação e rótulo a cada lançamento, preservando a ordem
func Annotate(entries []domain.Entry, today domain.Date) []domain.ClassifiedEntry {
	out := make([]domain.ClassifiedEntry, 0, len(entries))
	for _, entry := range entries {
		classification := Classify(entry, today)
		out = append(out, domain.ClassifiedEntry{
			Entry:          entry,
			Classification: classification,
			Label:          classification.Label(entry.Type),
		})
	}
	return out
}
