package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"github.com/vfg2006/cash-position-api/pkg/log"
)

// ListEntries retorna os lançamentos filtrados, anotados com a classificação e os totais
func ListEntries(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseEntryFilters(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.ListEntries(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("entries: erro ao listar lançamentos")
			writeServiceError(w, err, "Erro ao listar lançamentos")
			return
		}

		logger.WithField("entries_returned", len(response.Entries)).Debug("entries: lançamentos listados")
		writeJSON(w, r, http.StatusOK, response)
	})
}

// EntriesReport retorna o relatório de contas com ordenação configurável
func EntriesReport(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters, err := parseEntryFilters(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		opts, err := parseSortOptions(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		response, err := service.Report(r.Context(), filters, opts)
		if err != nil {
			logger.WithError(err).Error("entries-report: erro ao gerar relatório")
			writeServiceError(w, err, "Erro ao gerar relatório de contas")
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func CreateEntry(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.CreateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entry, err := service.CreateEntry(r.Context(), request)
		if err != nil {
			logger.WithError(err).Warn("entries: erro ao criar lançamento")
			writeServiceError(w, err, "Erro ao criar lançamento")
			return
		}

		logger.WithField("entry_id", entry.ID).Info("entries: lançamento criado")
		writeJSON(w, r, http.StatusCreated, entry)
	})
}

// MarkEntryPaid baixa o lançamento; paid_date no corpo é opcional
func MarkEntryPaid(service ledger.LedgerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento é obrigatório", nil)
			return
		}

		var request domain.MarkPaidRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		entry, err := service.MarkPaid(r.Context(), id, request.PaidDate)
		if err != nil {
			logger.WithError(err).WithField("entry_id", id).Warn("entries: erro ao baixar lançamento")
			writeServiceError(w, err, "Erro ao baixar lançamento")
			return
		}

		logger.WithField("entry_id", id).Info("entries: lançamento baixado")
		writeJSON(w, r, http.StatusOK, entry)
	})
}
