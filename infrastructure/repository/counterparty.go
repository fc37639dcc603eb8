package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cash-position-api/infrastructure/database/postgres"
	"github.com/vfg2006/cash-position-api/internal/domain"
)

const (
	counterpartyTable = "clientes_fornecedores cf"
)

type CounterpartyRepository interface {
	List(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error)
	Create(ctx context.Context, counterparty domain.Counterparty) (*domain.Counterparty, error)
}

type counterpartyRepository struct {
	conn *postgres.Connection
}

func NewCounterpartyRepository(conn *postgres.Connection) CounterpartyRepository {
	return &counterpartyRepository{
		conn: conn,
	}
}

func (r *counterpartyRepository) List(ctx context.Context, kind *domain.CounterpartyKind) ([]domain.Counterparty, error) {
	queryBuilder := squirrel.
		Select("cf.id", "cf.tipo", "cf.descricao", "cf.created_at").
		From(counterpartyTable).
		OrderBy("cf.descricao ASC").
		PlaceholderFormat(squirrel.Dollar)

	if kind != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cf.tipo": string(*kind)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counterparties := make([]domain.Counterparty, 0)
	for rows.Next() {
		counterparty, err := scanCounterparty(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cadastro: %w", err)
		}
		counterparties = append(counterparties, *counterparty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counterparties, nil
}

func (r *counterpartyRepository) Create(ctx context.Context, counterparty domain.Counterparty) (*domain.Counterparty, error) {
	query, args, err := squirrel.
		Insert("clientes_fornecedores").
		Columns("tipo", "descricao").
		Values(string(counterparty.Kind), counterparty.Description).
		Suffix("RETURNING id, tipo, descricao, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	created, err := scanCounterparty(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir cadastro: %w", err)
	}

	return created, nil
}

func scanCounterparty(row rowScanner) (*domain.Counterparty, error) {
	var (
		counterparty domain.Counterparty
		kind         string
	)

	if err := row.Scan(&counterparty.ID, &kind, &counterparty.Description, &counterparty.CreatedAt); err != nil {
		return nil, err
	}

	counterparty.Kind = domain.CounterpartyKind(kind)
	return &counterparty, nil
}
