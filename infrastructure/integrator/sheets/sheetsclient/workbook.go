package sheetsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkbookClient lê as planilhas de um arquivo .xlsx local, com uma aba por planilha
type WorkbookClient struct {
	path string
}

var _ Client = (*WorkbookClient)(nil)

func NewWorkbookClient(path string) *WorkbookClient {
	return &WorkbookClient{path: path}
}

func (c *WorkbookClient) GetRows(ctx context.Context, source Source) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir arquivo %s: %w", c.path, err)
	}
	defer f.Close()

	sheet := source.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %s: %w", sheet, err)
	}

	first, last, err := columnBounds(source.Range)
	if err != nil {
		return nil, err
	}

	return sliceColumns(rows, first, last), nil
}

// columnBounds converte um intervalo de colunas como "A:D" em índices base zero.
// Intervalo vazio significa todas as colunas.
func columnBounds(rng string) (int, int, error) {
	if i := strings.LastIndex(rng, "!"); i >= 0 {
		rng = rng[i+1:]
	}
	if rng == "" {
		return 0, -1, nil
	}

	parts := strings.Split(rng, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("intervalo de colunas inválido: %s", rng)
	}

	first, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("intervalo de colunas inválido: %s: %w", rng, err)
	}
	last, err := excelize.ColumnNameToNumber(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("intervalo de colunas inválido: %s: %w", rng, err)
	}
	if last < first {
		first, last = last, first
	}

	return first - 1, last - 1, nil
}

// sliceColumns recorta as colunas de cada linha, como a API do Google faz com intervalos.
// Células vazias no fim da linha são removidas.
func sliceColumns(rows [][]string, first, last int) [][]string {
	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		end := len(row)
		if last >= 0 && last+1 < end {
			end = last + 1
		}

		var cells []string
		if first < end {
			cells = make([]string, 0, end-first)
			for _, cell := range row[first:end] {
				cells = append(cells, strings.TrimSpace(cell))
			}
		}

		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		result = append(result, cells)
	}
	return result
}
