package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/config"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/scheduler"
	importmocks "github.com/vfg2006/cash-position-api/internal/usecases/importing/mocks"
	ledgermocks "github.com/vfg2006/cash-position-api/internal/usecases/ledger/mocks"
	registrymocks "github.com/vfg2006/cash-position-api/internal/usecases/registry/mocks"
	"go.uber.org/mock/gomock"
)

type stubAuthenticator struct {
	claims *domain.Claims
}

func (s stubAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, nil
}

func newTestServer(t *testing.T, ctrl *gomock.Controller, ledgerService *ledgermocks.MockLedgerService, claims *domain.Claims) *Server {
	t.Helper()

	importer := importmocks.NewMockImporter(ctrl)
	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"*"}},
	}

	srv, err := New(cfg, Services{
		Ledger:        ledgerService,
		Registry:      registrymocks.NewMockCounterpartyService(ctrl),
		Importer:      importer,
		ImportSync:    scheduler.NewSheetsImportSyncService(importer, config.SheetsImportSync{}),
		Authenticator: stubAuthenticator{claims: claims},
	})
	require.NoError(t, err)
	return srv
}

func TestServer_AuthenticatedRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgerService := ledgermocks.NewMockLedgerService(ctrl)
	ledgerService.EXPECT().Dashboard(gomock.Any()).Return(&domain.DashboardSummary{}, nil)

	srv := newTestServer(t, ctrl, ledgerService, &domain.Claims{Role: domain.RoleAuthenticated})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestServer_ImportRunRequiresServiceRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newTestServer(t, ctrl, ledgermocks.NewMockLedgerService(ctrl), &domain.Claims{Role: domain.RoleAuthenticated})

	req := httptest.NewRequest(http.MethodPost, "/v1/import/run", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newTestServer(t, ctrl, ledgermocks.NewMockLedgerService(ctrl), nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/entries", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_PreflightSkipsAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := newTestServer(t, ctrl, ledgermocks.NewMockLedgerService(ctrl), nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/entries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
