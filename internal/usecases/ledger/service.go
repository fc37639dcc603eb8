// Package ledger expõe as visões de lançamentos sobre o motor de posição de caixa
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/infrastructure/repository"
	"github.com/vfg2006/cash-position-api/internal/cache"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/cashflow"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/utils"
)

type LedgerService interface {
	ListEntries(ctx context.Context, filters domain.EntryFilters) (*domain.EntryListResponse, error)
	Report(ctx context.Context, filters domain.EntryFilters, opts domain.SortOptions) (*domain.EntryListResponse, error)
	CreateEntry(ctx context.Context, request domain.CreateEntryRequest) (*domain.Entry, error)
	MarkPaid(ctx context.Context, id string, paidDate *domain.Date) (*domain.Entry, error)
	CashFlow(ctx context.Context, month domain.Month, unit string, view domain.ProjectionView) (*domain.Projection, error)
	Results(ctx context.Context, start, end domain.Date) (*domain.PeriodResult, error)
	Periods(ctx context.Context) (*domain.AvailablePeriods, error)
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
}

type Service struct {
	entryRepo    repository.EntryRepository
	entries      *cache.Snapshot[[]domain.Entry]
	cacheEnabled bool
	now          func() time.Time
}

func NewService(entryRepo repository.EntryRepository, cfg config.Ledger) LedgerService {
	return &Service{
		entryRepo:    entryRepo,
		entries:      cache.NewSnapshot[[]domain.Entry](cfg.CacheTTL),
		cacheEnabled: cfg.CacheEnabled,
		now:          time.Now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now())
}

// loadEntries busca a lista completa de lançamentos, usando o cache quando possível.
// Uma busca que termina depois de outra mais recente não substitui o cache, mas
// os dados continuam valendo para quem os pediu.
func (s *Service) loadEntries(ctx context.Context) ([]domain.Entry, error) {
	if s.cacheEnabled {
		if entries, ok := s.entries.Get(); ok {
			return entries, nil
		}
	}

	token := s.entries.Begin()

	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lançamentos no banco de dados")
		return nil, NewLedgerError(ErrFetchEntries, apiErrors.ErrDatabaseOperation, "Falha ao listar lançamentos no banco de dados")
	}

	if err := cashflow.ValidateAll(entries); err != nil {
		logger := logrus.WithError(err)
		var invalid *cashflow.InvalidEntriesError
		if errors.As(err, &invalid) {
			logger = logger.WithFields(logrus.Fields{
				"invalid_entries": len(invalid.IDs),
				"entry_ids":       invalid.IDs,
			})
		}
		logger.Warn("Lançamentos inconsistentes encontrados no banco de dados")
	}

	if !s.entries.Commit(token, entries) {
		logrus.WithFields(logrus.Fields{
			"token":  token,
			"latest": s.entries.Generation(),
		}).WithError(cache.ErrStaleResponse).Debug("Busca de lançamentos superada por outra mais recente")
	}

	return entries, nil
}

func (s *Service) ListEntries(ctx context.Context, filters domain.EntryFilters) (*domain.EntryListResponse, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	filtered := cashflow.Apply(entries, filters, today)

	return &domain.EntryListResponse{
		Filters: filters,
		Entries: cashflow.Annotate(filtered, today),
		Totals:  cashflow.Totals(filtered, today),
	}, nil
}

func (s *Service) Report(ctx context.Context, filters domain.EntryFilters, opts domain.SortOptions) (*domain.EntryListResponse, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	ordered, err := cashflow.ApplyReport(entries, filters, opts, today)
	if err != nil {
		return nil, NewLedgerError(err, apiErrors.ErrInvalidRequest, string(opts.Field))
	}

	return &domain.EntryListResponse{
		Filters: filters,
		Entries: cashflow.Annotate(ordered, today),
		Totals:  cashflow.Totals(ordered, today),
	}, nil
}

func (s *Service) CreateEntry(ctx context.Context, request domain.CreateEntryRequest) (*domain.Entry, error) {
	entry := request.ToEntry()
	if entry.Status == "" {
		entry.Status = domain.EntryStatusDue
	}

	if err := cashflow.ValidateNew(entry); err != nil {
		var validationErr *cashflow.ValidationError
		if errors.As(err, &validationErr) {
			return nil, NewLedgerError(err, apiErrors.ErrInvalidRequest, validationErr.Field)
		}
		return nil, NewLedgerError(err, apiErrors.ErrInvalidRequest, "")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewLedgerError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	entry.ID = id

	if err := s.entryRepo.Create(ctx, entry); err != nil {
		logrus.WithError(err).WithField("entry_id", entry.ID).Error("Erro ao inserir lançamento")
		return nil, NewLedgerErrorWithID(ErrSaveEntry, apiErrors.ErrDatabaseOperation, entry.ID, "Falha ao salvar lançamento")
	}

	s.entries.Invalidate()

	logrus.WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"type":     entry.Type,
		"amount":   entry.Amount.String(),
	}).Info("Lançamento criado")

	return &entry, nil
}

// MarkPaid baixa o lançamento. Sem data informada, usa o dia corrente em UTC.
func (s *Service) MarkPaid(ctx context.Context, id string, paidDate *domain.Date) (*domain.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao buscar lançamento")
		return nil, NewLedgerErrorWithID(ErrFetchEntries, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar lançamento")
	}
	if entry == nil {
		return nil, NewLedgerErrorWithID(ErrEntryNotFound, apiErrors.ErrEntryNotFound, id, "")
	}

	date := s.today()
	if paidDate != nil && !paidDate.IsZero() {
		date = *paidDate
	}

	updated, err := cashflow.MarkPaid(*entry, date)
	if err != nil {
		if errors.Is(err, cashflow.ErrAlreadyPaid) {
			return nil, NewLedgerErrorWithID(err, apiErrors.ErrEntryAlreadyPaid, id, "")
		}
		return nil, NewLedgerErrorWithID(err, apiErrors.ErrInvalidRequest, id, "")
	}

	if err := s.entryRepo.MarkPaid(ctx, id, date); err != nil {
		if errors.Is(err, repository.ErrEntryNotUpdated) {
			return nil, NewLedgerErrorWithID(cashflow.ErrAlreadyPaid, apiErrors.ErrEntryAlreadyPaid, id, "")
		}
		logrus.WithError(err).WithField("entry_id", id).Error("Erro ao baixar lançamento")
		return nil, NewLedgerErrorWithID(ErrSaveEntry, apiErrors.ErrDatabaseOperation, id, "Falha ao baixar lançamento")
	}

	s.entries.Invalidate()

	logrus.WithFields(logrus.Fields{
		"entry_id":  id,
		"paid_date": date.String(),
	}).Info("Lançamento baixado")

	return &updated, nil
}

func (s *Service) CashFlow(ctx context.Context, month domain.Month, unit string, view domain.ProjectionView) (*domain.Projection, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	projection := cashflow.Project(entries, month, unit)
	if view == domain.ProjectionSynthetic {
		projection = projection.Synthetic()
	}

	return &projection, nil
}

func (s *Service) Results(ctx context.Context, start, end domain.Date) (*domain.PeriodResult, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, NewLedgerError(cashflow.ErrInvalidPeriod, apiErrors.ErrInvalidRequest, "início deve ser anterior ou igual ao fim")
	}

	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	result := cashflow.Summarize(entries, start, end)
	return &result, nil
}

func (s *Service) Periods(ctx context.Context) (*domain.AvailablePeriods, error) {
	first, last, err := s.entryRepo.DateBounds(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar limites de datas dos lançamentos")
		return nil, NewLedgerError(ErrFetchEntries, apiErrors.ErrDatabaseOperation, "Falha ao buscar competências")
	}

	periods := cashflow.Competences(first, last, s.today())
	return &periods, nil
}

func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	entries, err := s.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	summary := cashflow.Dashboard(entries, s.today())
	summary.GeneratedAt = s.now().UTC()
	return &summary, nil
}
