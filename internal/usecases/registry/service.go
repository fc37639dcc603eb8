// Package registry mantém o cadastro de clientes e fornecedores
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cash-position-api/infrastructure/repository"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
)

var (
	ErrInvalidKind         = errors.New("tipo de cadastro deve ser Cliente ou Fornecedor")
	ErrDescriptionRequired = errors.New("descrição é obrigatória")
	ErrFetchCounterparties = errors.New("erro ao buscar cadastros")
	ErrSaveCounterparty    = errors.New("erro ao salvar cadastro")
)

// RegistryError carrega o código de API junto do erro base
type RegistryError struct {
	Err  error
	Code string
}

func (e *RegistryError) Error() string {
	return e.Err.Error()
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

type CounterpartyService interface {
	List(ctx context.Context, kind string) ([]domain.Counterparty, error)
	Create(ctx context.Context, kind domain.CounterpartyKind, description string) (*domain.Counterparty, error)
}

type Service struct {
	repo repository.CounterpartyRepository
}

func NewService(repo repository.CounterpartyRepository) CounterpartyService {
	return &Service{repo: repo}
}

// List retorna os cadastros, opcionalmente filtrados pelo tipo. Tipo vazio lista todos.
func (s *Service) List(ctx context.Context, kind string) ([]domain.Counterparty, error) {
	var filter *domain.CounterpartyKind
	if kind != "" {
		k := domain.CounterpartyKind(kind)
		if !k.IsValid() {
			return nil, &RegistryError{Err: ErrInvalidKind, Code: apiErrors.ErrInvalidRequest}
		}
		filter = &k
	}

	counterparties, err := s.repo.List(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar cadastros")
		return nil, &RegistryError{Err: ErrFetchCounterparties, Code: apiErrors.ErrDatabaseOperation}
	}

	return counterparties, nil
}

func (s *Service) Create(ctx context.Context, kind domain.CounterpartyKind, description string) (*domain.Counterparty, error) {
	if !kind.IsValid() {
		return nil, &RegistryError{Err: ErrInvalidKind, Code: apiErrors.ErrInvalidRequest}
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &RegistryError{Err: ErrDescriptionRequired, Code: apiErrors.ErrMissingRequiredData}
	}

	created, err := s.repo.Create(ctx, domain.Counterparty{Kind: kind, Description: description})
	if err != nil {
		logrus.WithError(err).WithField("kind", kind).Error("Erro ao salvar cadastro")
		return nil, &RegistryError{Err: fmt.Errorf("%w: %s", ErrSaveCounterparty, description), Code: apiErrors.ErrDatabaseOperation}
	}

	return created, nil
}
