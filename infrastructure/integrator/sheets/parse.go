package sheets

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/pkg/utils"
)

const (
	paymentColumns = 4 // fornecedor, parcela, vencimento, valor
	receiptColumns = 3 // cliente, vencimento, valor
)

// ParsePayments converte as linhas da planilha de pagamentos. A primeira linha é o cabeçalho.
// Linhas incompletas, com data inválida ou valor zerado são ignoradas.
func ParsePayments(rows [][]string, today domain.Date, importedAt time.Time) []domain.ImportedEntry {
	entries := make([]domain.ImportedEntry, 0)

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < paymentColumns {
			logrus.WithFields(logrus.Fields{"row": i, "columns": len(row)}).Debug("Pagamento ignorado: linha incompleta")
			continue
		}

		dueDate, amount, ok := parseDueAndAmount(row[2], row[3], i, "pagamento")
		if !ok {
			continue
		}

		status := domain.ImportedStatusOpen
		if dueDate.Before(today) {
			status = domain.ImportedStatusExpired
		}

		entries = append(entries, domain.ImportedEntry{
			ExternalID:   fmt.Sprintf("pag_%d", i),
			Type:         domain.EntryTypeOutflow,
			Counterparty: row[0],
			Installment:  row[1],
			DueDate:      dueDate,
			Amount:       amount,
			Status:       status,
			ImportedAt:   importedAt,
		})
	}

	return entries
}

// ParseReceipts converte as linhas da planilha de recebimentos, com as mesmas regras de ParsePayments
func ParseReceipts(rows [][]string, today domain.Date, importedAt time.Time) []domain.ImportedEntry {
	entries := make([]domain.ImportedEntry, 0)

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < receiptColumns {
			logrus.WithFields(logrus.Fields{"row": i, "columns": len(row)}).Debug("Recebimento ignorado: linha incompleta")
			continue
		}

		dueDate, amount, ok := parseDueAndAmount(row[1], row[2], i, "recebimento")
		if !ok {
			continue
		}

		status := domain.ImportedStatusOpen
		if dueDate.Before(today) {
			status = domain.ImportedStatusLate
		}

		entries = append(entries, domain.ImportedEntry{
			ExternalID:   fmt.Sprintf("rec_%d", i),
			Type:         domain.EntryTypeInflow,
			Counterparty: row[0],
			DueDate:      dueDate,
			Amount:       amount,
			Status:       status,
			ImportedAt:   importedAt,
		})
	}

	return entries
}

func parseDueAndAmount(rawDate, rawAmount string, row int, kind string) (domain.Date, decimal.Decimal, bool) {
	logger := logrus.WithFields(logrus.Fields{"row": row, "kind": kind})

	amount, err := utils.ParseBRL(rawAmount)
	if err != nil {
		logger.WithError(err).Debug("Linha ignorada: valor inválido")
		return domain.Date{}, decimal.Zero, false
	}
	if !amount.IsPositive() {
		logger.WithField("amount", amount.String()).Debug("Linha ignorada: valor zerado ou negativo")
		return domain.Date{}, decimal.Zero, false
	}

	due, err := utils.ParseBRDate(rawDate)
	if err != nil {
		logger.WithError(err).Debug("Linha ignorada: vencimento inválido")
		return domain.Date{}, decimal.Zero, false
	}

	return domain.DateOf(due), amount, true
}
