package handler

import (
	"net/http"

	"github.com/vfg2006/cash-position-api/internal/api/handler/router"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
	"github.com/vfg2006/cash-position-api/internal/usecases/ledger"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry"
	"github.com/vfg2006/cash-position-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Entries(service ledger.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/entries",
			Method:      http.MethodGet,
			Handler:     ListEntries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries",
			Method:      http.MethodPost,
			Handler:     CreateEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/entries",
			Method:      http.MethodGet,
			Handler:     EntriesReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/entries/:id/pay",
			Method:      http.MethodPost,
			Handler:     MarkEntryPaid(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CashFlow(service ledger.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cashflow",
			Method:      http.MethodGet,
			Handler:     GetCashFlow(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Results(service ledger.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/results",
			Method:      http.MethodGet,
			Handler:     GetResults(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/results/periods",
			Method:      http.MethodGet,
			Handler:     GetResultPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service ledger.LedgerService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Counterparties(service registry.CounterpartyService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/counterparties",
			Method:      http.MethodGet,
			Handler:     ListCounterparties(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/counterparties",
			Method:      http.MethodPost,
			Handler:     CreateCounterparty(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Imports(importer importing.Importer, sync ImportSync) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/import/run",
			Method:      http.MethodPost,
			Handler:     RunImport(sync),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
		{
			Path:        "/v1/import/snapshot",
			Method:      http.MethodGet,
			Handler:     GetImportSnapshot(importer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/import/status",
			Method:      http.MethodGet,
			Handler:     GetImportStatus(sync),
			Middlewares: []func(http.Handler) http.Handler{middleware.ServiceRoleOnly()},
		},
	}
}
