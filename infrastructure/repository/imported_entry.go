package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cash-position-api/infrastructure/database/postgres"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

const (
	importedEntryTable = "importacoes i"
)

type ImportedEntryRepository interface {
	Replace(ctx context.Context, entries []domain.ImportedEntry) error
	List(ctx context.Context) ([]domain.ImportedEntry, error)
}

type importedEntryRepository struct {
	conn *postgres.Connection
}

func NewImportedEntryRepository(conn *postgres.Connection) ImportedEntryRepository {
	return &importedEntryRepository{
		conn: conn,
	}
}

// Replace troca todo o conteúdo da tabela pelas linhas da importação atual.
// Linhas que sumiram da planilha deixam de existir junto com a troca.
func (r *importedEntryRepository) Replace(ctx context.Context, entries []domain.ImportedEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteQuery, deleteArgs, err := squirrel.
			Delete("importacoes").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de remoção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover importação anterior: %w", err)
		}

		return insertImportedEntries(ctx, tx, entries)
	})
}

func insertImportedEntries(ctx context.Context, q postgres.Queryer, entries []domain.ImportedEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("importacoes").
		Columns(
			"external_id",
			"tipo",
			"contraparte",
			"parcela",
			"vencimento",
			"valor",
			"status",
			"imported_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		query = query.Values(
			entry.ExternalID,
			string(entry.Type),
			entry.Counterparty,
			entry.Installment,
			entry.DueDate,
			entry.Amount,
			string(entry.Status),
			entry.ImportedAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *importedEntryRepository) List(ctx context.Context) ([]domain.ImportedEntry, error) {
	query, args, err := squirrel.
		Select(
			"i.external_id",
			"i.tipo",
			"i.contraparte",
			"i.parcela",
			"i.vencimento",
			"i.valor",
			"i.status",
			"i.imported_at",
		).
		From(importedEntryTable).
		OrderBy("i.vencimento ASC", "i.external_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ImportedEntry, 0)
	for rows.Next() {
		var (
			entry     domain.ImportedEntry
			entryType string
			status    string
		)
		err := rows.Scan(
			&entry.ExternalID,
			&entryType,
			&entry.Counterparty,
			&entry.Installment,
			&entry.DueDate,
			&entry.Amount,
			&status,
			&entry.ImportedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear importação: %w", err)
		}
		entry.Type = domain.EntryType(entryType)
		entry.Status = domain.ImportedStatus(status)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
