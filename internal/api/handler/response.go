package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cash-position-api/internal/usecases/authenticating"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON escreve a resposta com o status informado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para o código de API.
// Erros sem código conhecido viram SRV_001 com a mensagem fallback.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	var (
		ledgerErr   *ledger.LedgerError
		registryErr *registry.RegistryError
		importErr   *importing.ImportError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &ledgerErr):
		apiErrors.WriteError(w, ledgerErr.Code, ledgerErr.Err.Error(), detailsOf(ledgerErr.Details))
	case errors.As(err, &registryErr):
		apiErrors.WriteError(w, registryErr.Code, registryErr.Error(), nil)
	case errors.As(err, &importErr):
		apiErrors.WriteError(w, importErr.Code, importErr.Err.Error(), detailsOf(importErr.Details))
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func detailsOf(details string) any {
	if details == "" {
		return nil
	}
	return details
}
