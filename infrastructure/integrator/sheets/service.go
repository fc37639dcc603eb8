// Package sheets importa contas a pagar e a receber das planilhas externas
package sheets

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/cash-position-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

type SheetsIntegrator interface {
	FetchPayments(ctx context.Context, today domain.Date) ([]domain.ImportedEntry, error)
	FetchReceipts(ctx context.Context, today domain.Date) ([]domain.ImportedEntry, error)
}

type SheetsService struct {
	cfg    config.Sheets
	Client sheetsclient.Client
	now    func() time.Time
}

func New(cfg config.Sheets, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *SheetsService) FetchPayments(ctx context.Context, today domain.Date) ([]domain.ImportedEntry, error) {
	rows, err := s.Client.GetRows(ctx, sheetsclient.Source{
		SpreadsheetID: s.cfg.PaymentsSpreadsheetID,
		Sheet:         s.cfg.PaymentsSheet,
		Range:         s.cfg.PaymentsRange,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar planilha de pagamentos")
	}

	return ParsePayments(rows, today, s.now().UTC()), nil
}

func (s *SheetsService) FetchReceipts(ctx context.Context, today domain.Date) ([]domain.ImportedEntry, error) {
	rows, err := s.Client.GetRows(ctx, sheetsclient.Source{
		SpreadsheetID: s.cfg.ReceiptsSpreadsheetID,
		Sheet:         s.cfg.ReceiptsSheet,
		Range:         s.cfg.ReceiptsRange,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar planilha de recebimentos")
	}

	return ParseReceipts(rows, today, s.now().UTC()), nil
}
