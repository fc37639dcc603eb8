package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/scheduler"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

// ImportSync é o agendador que controla a execução das importações
type ImportSync interface {
	RunNow(ctx context.Context) (*domain.ImportSnapshot, error)
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunImport executa a importação das planilhas.
// Com async=true a importação roda em segundo plano e a resposta é 202.
func RunImport(sync ImportSync) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.URL.Query().Get("async") == "true" {
			if !sync.TriggerManualSync(r.Context()) {
				apiErrors.WriteError(w, apiErrors.ErrImportRunning, scheduler.ErrImportRunning.Error(), nil)
				return
			}
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Importação iniciada com sucesso",
			})
			return
		}

		snapshot, err := sync.RunNow(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrImportRunning) {
				apiErrors.WriteError(w, apiErrors.ErrImportRunning, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("import: erro ao importar planilhas")
			writeServiceError(w, err, "Erro ao importar planilhas")
			return
		}

		logger.WithFields(log.Fields{
			"payments": len(snapshot.Payments),
			"receipts": len(snapshot.Receipts),
		}).Info("import: planilhas importadas")
		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// GetImportSnapshot retorna o resultado da última importação
func GetImportSnapshot(importer importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := importer.Snapshot(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("import: snapshot indisponível")
			writeServiceError(w, err, "Erro ao buscar última importação")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func GetImportStatus(sync ImportSync) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, sync.GetStatus())
	})
}
