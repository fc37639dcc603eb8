package domain

import "time"

type CounterpartyKind string

const (
	CounterpartyClient   CounterpartyKind = "Cliente"
	CounterpartySupplier CounterpartyKind = "Fornecedor"
)

func (k CounterpartyKind) IsValid() bool {
	return k == CounterpartyClient || k == CounterpartySupplier
}

// Counterparty é um cliente ou fornecedor cadastrado (tabela clientes_fornecedores)
type Counterparty struct {
	ID          int              `json:"id"`
	Kind        CounterpartyKind `json:"kind"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}
