package handler

import (
	"net/http"

	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

type createCounterpartyRequest struct {
	Kind        domain.CounterpartyKind `json:"kind"`
	Description string                  `json:"description"`
}

// ListCounterparties lista clientes e fornecedores (kind=Cliente|Fornecedor opcional)
func ListCounterparties(service registry.CounterpartyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counterparties, err := service.List(r.Context(), r.URL.Query().Get("kind"))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("counterparties: erro ao listar cadastros")
			writeServiceError(w, err, "Erro ao listar cadastros")
			return
		}

		if counterparties == nil {
			counterparties = []domain.Counterparty{}
		}
		writeJSON(w, r, http.StatusOK, counterparties)
	})
}

func CreateCounterparty(service registry.CounterpartyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request createCounterpartyRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		counterparty, err := service.Create(r.Context(), request.Kind, request.Description)
		if err != nil {
			logger.WithError(err).Warn("counterparties: erro ao criar cadastro")
			writeServiceError(w, err, "Erro ao criar cadastro")
			return
		}

		logger.WithField("counterparty_id", counterparty.ID).Info("counterparties: cadastro criado")
		writeJSON(w, r, http.StatusCreated, counterparty)
	})
}
