package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

// GetCashFlow retorna a projeção diária do mês (month=yyyy-MM, padrão mês corrente)
func GetCashFlow(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		month := domain.DateOf(time.Now()).MonthOf()
		if value := query.Get("month"); value != "" {
			parsed, err := domain.ParseMonth(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			month = parsed
		}

		view := domain.ProjectionAnalytic
		switch value := domain.ProjectionView(query.Get("view")); value {
		case "", domain.ProjectionAnalytic:
		case domain.ProjectionSynthetic:
			view = value
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Visão inválida: use analytic ou synthetic", nil)
			return
		}

		unit := query.Get("unit")

		logger.WithFields(log.Fields{
			"month": month.String(),
			"unit":  unit,
			"view":  view,
		}).Info("cashflow: gerando projeção")

		projection, err := service.CashFlow(r.Context(), month, unit, view)
		if err != nil {
			logger.WithError(err).Error("cashflow: erro ao gerar projeção")
			writeServiceError(w, err, "Erro ao gerar fluxo de caixa")
			return
		}

		writeJSON(w, r, http.StatusOK, projection)
	})
}
