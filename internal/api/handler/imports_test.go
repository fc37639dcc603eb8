package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/cache"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/scheduler"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing"
	"github.com/vfg2006/cash-position-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type stubImportSync struct {
	snapshot  *domain.ImportSnapshot
	err       error
	triggered bool
	accepted  bool
}

func (s *stubImportSync) RunNow(context.Context) (*domain.ImportSnapshot, error) {
	return s.snapshot, s.err
}

func (s *stubImportSync) TriggerManualSync(context.Context) bool {
	s.triggered = true
	return s.accepted
}

func (s *stubImportSync) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "running": false}
}

func TestRunImport(t *testing.T) {
	tests := []struct {
		name   string
		sync   *stubImportSync
		target string
		status int
		code   string
	}{
		{
			name: "Importação síncrona",
			sync: &stubImportSync{snapshot: &domain.ImportSnapshot{
				Payments: []domain.ImportedEntry{{ExternalID: "pag_1"}},
			}},
			target: "/v1/import/run",
			status: http.StatusOK,
		},
		{
			name:   "Importação em andamento",
			sync:   &stubImportSync{err: scheduler.ErrImportRunning},
			target: "/v1/import/run",
			status: http.StatusConflict,
			code:   apiErrors.ErrImportRunning,
		},
		{
			name:   "Importação superada por outra mais nova",
			sync:   &stubImportSync{err: importing.NewImportError(cache.ErrStaleResponse, apiErrors.ErrImportSuperseded, "")},
			target: "/v1/import/run",
			status: http.StatusConflict,
			code:   apiErrors.ErrImportSuperseded,
		},
		{
			name:   "Planilha indisponível",
			sync:   &stubImportSync{err: importing.NewImportError(importing.ErrFetchSheets, apiErrors.ErrExternalService, "timeout")},
			target: "/v1/import/run",
			status: http.StatusBadGateway,
			code:   apiErrors.ErrExternalService,
		},
		{
			name:   "Importação assíncrona aceita",
			sync:   &stubImportSync{accepted: true},
			target: "/v1/import/run?async=true",
			status: http.StatusAccepted,
		},
		{
			name:   "Importação assíncrona recusada",
			sync:   &stubImportSync{accepted: false},
			target: "/v1/import/run?async=true",
			status: http.StatusConflict,
			code:   apiErrors.ErrImportRunning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodPost, "/v1/import/run", RunImport(tt.sync), tt.target, "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetImportSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockImporter := mocks.NewMockImporter(ctrl)
	h := GetImportSnapshot(mockImporter)

	t.Run("Última importação", func(t *testing.T) {
		mockImporter.EXPECT().Snapshot(gomock.Any()).Return(&domain.ImportSnapshot{
			Receipts: []domain.ImportedEntry{{ExternalID: "rec_1"}},
		}, nil)

		rec := serve(t, http.MethodGet, "/v1/import/snapshot", h, "/v1/import/snapshot", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "rec_1")
	})

	t.Run("Nenhuma importação realizada", func(t *testing.T) {
		mockImporter.EXPECT().Snapshot(gomock.Any()).
			Return(nil, importing.NewImportError(importing.ErrNoImport, apiErrors.ErrImportUnavailable, ""))

		rec := serve(t, http.MethodGet, "/v1/import/snapshot", h, "/v1/import/snapshot", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrImportUnavailable, decodeAPIError(t, rec).Code)
	})
}

func TestGetImportStatus(t *testing.T) {
	rec := serve(t, http.MethodGet, "/v1/import/status", GetImportStatus(&stubImportSync{}), "/v1/import/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sync_enabled":true,"running":false}`, rec.Body.String())
}
