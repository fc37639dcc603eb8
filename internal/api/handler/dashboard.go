package handler

import (
	"net/http"

	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

func GetDashboard(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Dashboard(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao montar resumo")
			writeServiceError(w, err, "Erro ao montar o painel")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}
