// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cash-position-api/infrastructure/database/postgres"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

const (
	entryTable = "lancamentos l"
)

var entryColumns = []string{
	"l.id",
	"l.data",
	"l.tipo",
	"l.cliente_fornecedor",
	"l.descricao",
	"l.valor",
	"l.status",
	"l.datapag",
	"l.unidade",
	"l.obs",
}

// ErrEntryNotUpdated indica que a baixa não alterou nenhuma linha
var ErrEntryNotUpdated = errors.New("lançamento não encontrado ou já baixado")

type EntryRepository interface {
	List(ctx context.Context) ([]domain.Entry, error)
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	Create(ctx context.Context, entry domain.Entry) error
	MarkPaid(ctx context.Context, id string, paidDate domain.Date) error
	DateBounds(ctx context.Context) (first *domain.Date, last *domain.Date, err error)
}

type entryRepository struct {
	conn *postgres.Connection
}

func NewEntryRepository(conn *postgres.Connection) EntryRepository {
	return &entryRepository{
		conn: conn,
	}
}

func (r *entryRepository) List(ctx context.Context) ([]domain.Entry, error) {
	query, args, err := squirrel.
		Select(entryColumns...).
		From(entryTable).
		OrderBy("l.data ASC", "l.id ASC").
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

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	query, args, err := squirrel.
		Select(entryColumns...).
		From(entryTable).
		Where(squirrel.Eq{"l.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	return entry, nil
}

func (r *entryRepository) Create(ctx context.Context, entry domain.Entry) error {
	query, args, err := squirrel.
		Insert("lancamentos").
		Columns("id", "data", "tipo", "cliente_fornecedor", "descricao", "valor", "status", "datapag", "unidade", "obs").
		Values(
			entry.ID,
			entry.Date,
			string(entry.Type),
			entry.Counterparty,
			entry.Description,
			entry.Amount,
			string(entry.Status),
			entry.PaidDate,
			nullableUnit(entry.Unit),
			entry.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir lançamento: %w", err)
	}

	return nil
}

// MarkPaid grava status e data de pagamento em um único update.
// Lançamentos já pagos não são alterados.
func (r *entryRepository) MarkPaid(ctx context.Context, id string, paidDate domain.Date) error {
	query, args, err := squirrel.
		Update("lancamentos").
		Set("status", string(domain.EntryStatusPaid)).
		Set("datapag", paidDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": string(domain.EntryStatusPaid)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao baixar lançamento: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrEntryNotUpdated
	}

	return nil
}

// DateBounds retorna a menor e a maior data de lançamento; ambas nil com a tabela vazia
func (r *entryRepository) DateBounds(ctx context.Context) (*domain.Date, *domain.Date, error) {
	query, args, err := squirrel.
		Select("MIN(l.data)", "MAX(l.data)").
		From(entryTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var first, last *domain.Date
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&first, &last); err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar limites de datas: %w", err)
	}

	return first, last, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var (
		entry     domain.Entry
		entryType string
		status    string
		unit      sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.Date,
		&entryType,
		&entry.Counterparty,
		&entry.Description,
		&entry.Amount,
		&status,
		&entry.PaidDate,
		&unit,
		&entry.Notes,
	)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.EntryType(entryType)
	entry.Status = domain.EntryStatus(status)
	if unit.Valid {
		entry.Unit = domain.Unit(unit.String)
	}

	return &entry, nil
}

func nullableUnit(unit domain.Unit) sql.NullString {
	return sql.NullString{String: string(unit), Valid: unit != ""}
}
