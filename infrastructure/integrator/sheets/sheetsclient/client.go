package sheetsclient

import (
	"context"
	"fmt"
	"strings"
)

// Source identifica a origem de uma planilha. O cliente Google usa SpreadsheetID e
// Range; o cliente de arquivo usa Sheet e as colunas de Range.
type Source struct {
	SpreadsheetID string
	Sheet         string
	Range         string
}

type Client interface {
	GetRows(ctx context.Context, source Source) ([][]string, error)
}

// normalizeRow converte as células retornadas pela API em texto
func normalizeRow(cells []any) []string {
	row := make([]string, len(cells))
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		row[i] = strings.TrimSpace(fmt.Sprint(cell))
	}
	return row
}

// UnavailableClient responde sempre com o erro de configuração da origem.
// Mantém a API de pé quando as credenciais das planilhas não foram informadas.
type UnavailableClient struct {
	err error
}

func NewUnavailableClient(err error) *UnavailableClient {
	return &UnavailableClient{err: err}
}

func (c *UnavailableClient) GetRows(context.Context, Source) ([][]string, error) {
	return nil, fmt.Errorf("origem das planilhas indisponível: %w", c.err)
}
