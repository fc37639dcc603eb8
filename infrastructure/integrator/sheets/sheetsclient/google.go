package sheetsclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/internal/config"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

var ErrMissingCredentials = errors.New("credenciais do Google não configuradas")

type GoogleClient struct {
	svc *gsheet.Service
}

var _ Client = (*GoogleClient)(nil)

// NewGoogleClient cria o cliente da API do Google Sheets com as credenciais da conta de serviço
func NewGoogleClient(ctx context.Context, cfg config.Sheets) (*GoogleClient, error) {
	if cfg.CredentialsJSON == "" {
		return nil, ErrMissingCredentials
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON([]byte(cfg.CredentialsJSON)),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar serviço do Google Sheets: %w", err)
	}

	logrus.Info("Cliente do Google Sheets criado com sucesso")
	return &GoogleClient{svc: svc}, nil
}

func (c *GoogleClient) GetRows(ctx context.Context, source Source) ([][]string, error) {
	rng := source.Range
	if source.Sheet != "" {
		rng = fmt.Sprintf("%s!%s", source.Sheet, source.Range)
	}

	resp, err := c.svc.Spreadsheets.Values.Get(source.SpreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler intervalo %s da planilha %s: %w", rng, source.SpreadsheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, cells := range resp.Values {
		rows = append(rows, normalizeRow(cells))
	}

	return rows, nil
}
