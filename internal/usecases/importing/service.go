// Package importing executa a importação das planilhas de pagamentos e recebimentos
package importing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/cash-position-api/infrastructure/repository"
	"github.com/vfg2006/cash-position-api/internal/cache"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Importer interface {
	Run(ctx context.Context) (*domain.ImportSnapshot, error)
	Snapshot(ctx context.Context) (*domain.ImportSnapshot, error)
}

type Service struct {
	integrator sheets.SheetsIntegrator
	repo       repository.ImportedEntryRepository
	snapshot   *cache.Snapshot[domain.ImportSnapshot]
	now        func() time.Time
}

func NewService(integrator sheets.SheetsIntegrator, repo repository.ImportedEntryRepository) Importer {
	return &Service{
		integrator: integrator,
		repo:       repo,
		snapshot:   cache.NewSnapshot[domain.ImportSnapshot](0),
		now:        time.Now,
	}
}

// Run busca as duas planilhas em paralelo, grava as linhas e substitui o snapshot.
// Se outra importação começou depois desta, o resultado é descartado com ErrStaleResponse.
func (s *Service) Run(ctx context.Context) (*domain.ImportSnapshot, error) {
	token := s.snapshot.Begin()
	startedAt := s.now().UTC()
	today := domain.DateOf(startedAt)

	var payments, receipts []domain.ImportedEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payments, err = s.integrator.FetchPayments(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		receipts, err = s.integrator.FetchReceipts(gctx, today)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Erro ao buscar planilhas")
		return nil, NewImportError(ErrFetchSheets, apiErrors.ErrExternalService, err.Error())
	}

	// As duas planilhas pertencem à mesma importação
	payments = stampImportedAt(payments, startedAt)
	receipts = stampImportedAt(receipts, startedAt)

	all := make([]domain.ImportedEntry, 0, len(payments)+len(receipts))
	all = append(all, payments...)
	all = append(all, receipts...)

	if err := s.repo.Replace(ctx, all); err != nil {
		logrus.WithError(err).Error("Erro ao salvar lançamentos importados")
		return nil, NewImportError(ErrSaveImported, apiErrors.ErrDatabaseOperation, "")
	}

	snapshot := buildSnapshot(payments, receipts, startedAt)

	if !s.snapshot.Commit(token, snapshot) {
		logrus.WithField("token", token).Warn("Importação superada por outra mais recente, snapshot descartado")
		return nil, NewImportError(cache.ErrStaleResponse, apiErrors.ErrImportSuperseded, "")
	}

	logrus.WithFields(logrus.Fields{
		"payments":         len(payments),
		"receipts":         len(receipts),
		"total_payable":    utils.FormatBRL(snapshot.TotalPayable),
		"total_receivable": utils.FormatBRL(snapshot.TotalReceivable),
	}).Info("Importação de planilhas concluída")

	return &snapshot, nil
}

// Snapshot retorna o resultado da última importação. Sem snapshot em memória,
// por exemplo após reiniciar o serviço, reconstrói a partir do banco.
// A leitura não emite token: uma importação em andamento continua válida.
func (s *Service) Snapshot(ctx context.Context) (*domain.ImportSnapshot, error) {
	if snapshot, ok := s.snapshot.Get(); ok {
		return &snapshot, nil
	}

	generation := s.snapshot.Generation()

	stored, err := s.repo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lançamentos importados")
		return nil, NewImportError(ErrFetchImported, apiErrors.ErrDatabaseOperation, "")
	}
	if len(stored) == 0 {
		return nil, NewImportError(ErrNoImport, apiErrors.ErrImportUnavailable, "")
	}

	snapshot := rebuildSnapshot(stored)

	if !s.snapshot.Fill(generation, snapshot) {
		// Uma importação terminou durante a leitura; o valor dela prevalece
		if current, ok := s.snapshot.Get(); ok {
			return &current, nil
		}
	}

	return &snapshot, nil
}

// rebuildSnapshot monta o snapshot só com as linhas da importação mais recente
func rebuildSnapshot(stored []domain.ImportedEntry) domain.ImportSnapshot {
	var importedAt time.Time
	for _, entry := range stored {
		if entry.ImportedAt.After(importedAt) {
			importedAt = entry.ImportedAt
		}
	}

	var payments, receipts []domain.ImportedEntry
	for _, entry := range stored {
		if !entry.ImportedAt.Equal(importedAt) {
			continue
		}
		if entry.Type == domain.EntryTypeOutflow {
			payments = append(payments, entry)
		} else {
			receipts = append(receipts, entry)
		}
	}

	return buildSnapshot(payments, receipts, importedAt)
}

func stampImportedAt(entries []domain.ImportedEntry, importedAt time.Time) []domain.ImportedEntry {
	stamped := make([]domain.ImportedEntry, len(entries))
	for i, entry := range entries {
		entry.ImportedAt = importedAt
		stamped[i] = entry
	}
	return stamped
}

func buildSnapshot(payments, receipts []domain.ImportedEntry, importedAt time.Time) domain.ImportSnapshot {
	if payments == nil {
		payments = []domain.ImportedEntry{}
	}
	if receipts == nil {
		receipts = []domain.ImportedEntry{}
	}

	return domain.ImportSnapshot{
		Payments:        payments,
		Receipts:        receipts,
		TotalPayable:    sumAmounts(payments),
		TotalReceivable: sumAmounts(receipts),
		ImportedAt:      importedAt,
	}
}

func sumAmounts(entries []domain.ImportedEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return total
}
