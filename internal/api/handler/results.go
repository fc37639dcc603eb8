package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

// GetResults retorna o resultado realizado (DRE gerencial) do período
func GetResults(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		start, end, err := parseResultPeriod(r.URL.Query(), domain.DateOf(time.Now()))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.Results(r.Context(), start, end)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"start": start.String(),
				"end":   end.String(),
			}).Error("results: erro ao calcular resultado")
			writeServiceError(w, err, "Erro ao calcular resultado do período")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// GetResultPeriods retorna as competências disponíveis, da mais recente para a mais antiga
func GetResultPeriods(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.Periods(r.Context())
		if err != nil {
			logger.WithError(err).Error("results-periods: erro ao buscar competências")
			writeServiceError(w, err, "Erro ao buscar competências")
			return
		}

		logger.WithField("periods_count", len(periods.Periods)).Debug("results-periods: competências encontradas")
		writeJSON(w, r, http.StatusOK, periods)
	})
}
