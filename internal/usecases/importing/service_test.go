package importing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsmocks "github.com/vfg2006/cash-position-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/cash-position-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cash-position-api/internal/cache"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var importNow = time.Date(2024, 3, 15, 7, 0, 0, 0, time.UTC)

func imported(id string, entryType domain.EntryType, amount string) domain.ImportedEntry {
	return domain.ImportedEntry{
		ExternalID:   id,
		Type:         entryType,
		Counterparty: "Contraparte " + id,
		DueDate:      domain.NewDate(2024, 3, 20),
		Amount:       decimal.RequireFromString(amount),
		Status:       domain.ImportedStatusOpen,
		ImportedAt:   importNow,
	}
}

func importCode(t *testing.T, err error) string {
	t.Helper()
	var importErr *ImportError
	require.True(t, errors.As(err, &importErr), "esperado ImportError, obtido %v", err)
	return importErr.Code
}

func newTestService(integrator *sheetsmocks.MockSheetsIntegrator, repo *mocks.MockImportedEntryRepository) *Service {
	return &Service{
		integrator: integrator,
		repo:       repo,
		snapshot:   cache.NewSnapshot[domain.ImportSnapshot](0),
		now:        func() time.Time { return importNow },
	}
}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	mockRepo := mocks.NewMockImportedEntryRepository(ctrl)
	today := domain.NewDate(2024, 3, 15)

	payments := []domain.ImportedEntry{
		imported("pag_1", domain.EntryTypeOutflow, "100.50"),
		imported("pag_2", domain.EntryTypeOutflow, "49.50"),
	}
	receipt := imported("rec_1", domain.EntryTypeInflow, "350")
	receipt.ImportedAt = importNow.Add(2 * time.Second)
	receipts := []domain.ImportedEntry{receipt}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, service *Service, snapshot *domain.ImportSnapshot, err error)
	}{
		{
			name: "Importa as duas planilhas e guarda o snapshot",
			setup: func() {
				mockIntegrator.EXPECT().FetchPayments(gomock.Any(), today).Return(payments, nil)
				mockIntegrator.EXPECT().FetchReceipts(gomock.Any(), today).Return(receipts, nil)
				mockRepo.EXPECT().
					Replace(gomock.Any(), gomock.Len(3)).
					Return(nil)
			},
			validate: func(t *testing.T, service *Service, snapshot *domain.ImportSnapshot, err error) {
				require.NoError(t, err)
				assert.Len(t, snapshot.Payments, 2)
				for _, entry := range snapshot.Payments {
					assert.Equal(t, importNow, entry.ImportedAt)
				}
				require.Len(t, snapshot.Receipts, 1)
				assert.Equal(t, importNow, snapshot.Receipts[0].ImportedAt)
				assert.True(t, decimal.NewFromInt(150).Equal(snapshot.TotalPayable))
				assert.True(t, decimal.NewFromInt(350).Equal(snapshot.TotalReceivable))
				assert.Equal(t, importNow, snapshot.ImportedAt)

				cached, ok := service.snapshot.Get()
				require.True(t, ok)
				assert.Equal(t, *snapshot, cached)
			},
		},
		{
			name: "Falha em uma planilha não grava nada",
			setup: func() {
				mockIntegrator.EXPECT().FetchPayments(gomock.Any(), today).Return(nil, errors.New("403"))
				mockIntegrator.EXPECT().FetchReceipts(gomock.Any(), today).Return(receipts, nil).AnyTimes()
			},
			validate: func(t *testing.T, service *Service, snapshot *domain.ImportSnapshot, err error) {
				assert.Nil(t, snapshot)
				assert.ErrorIs(t, err, ErrFetchSheets)
				assert.Equal(t, apiErrors.ErrExternalService, importCode(t, err))
				_, ok := service.snapshot.Get()
				assert.False(t, ok)
			},
		},
		{
			name: "Falha ao gravar",
			setup: func() {
				mockIntegrator.EXPECT().FetchPayments(gomock.Any(), today).Return(payments, nil)
				mockIntegrator.EXPECT().FetchReceipts(gomock.Any(), today).Return(receipts, nil)
				mockRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))
			},
			validate: func(t *testing.T, service *Service, snapshot *domain.ImportSnapshot, err error) {
				assert.Nil(t, snapshot)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, importCode(t, err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(mockIntegrator, mockRepo)
			tt.setup()
			snapshot, err := service.Run(context.Background())
			tt.validate(t, service, snapshot, err)
		})
	}
}

func TestService_Run_OlderImportCannotOverwriteNewer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	mockRepo := mocks.NewMockImportedEntryRepository(ctrl)
	service := newTestService(mockIntegrator, mockRepo)

	newer := domain.ImportSnapshot{
		Payments:     []domain.ImportedEntry{imported("pag_1", domain.EntryTypeOutflow, "999")},
		Receipts:     []domain.ImportedEntry{},
		TotalPayable: decimal.NewFromInt(999),
	}

	// Uma importação mais nova começa e termina enquanto esta busca as planilhas
	mockIntegrator.EXPECT().
		FetchPayments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, today domain.Date) ([]domain.ImportedEntry, error) {
			service.snapshot.Commit(service.snapshot.Begin(), newer)
			return []domain.ImportedEntry{imported("pag_1", domain.EntryTypeOutflow, "1")}, nil
		})
	mockIntegrator.EXPECT().FetchReceipts(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := service.Run(context.Background())
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, cache.ErrStaleResponse)
	assert.Equal(t, apiErrors.ErrImportSuperseded, importCode(t, err))

	cached, ok := service.snapshot.Get()
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(999).Equal(cached.TotalPayable))
}

func TestService_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sheetsmocks.NewMockSheetsIntegrator(ctrl)
	mockRepo := mocks.NewMockImportedEntryRepository(ctrl)

	t.Run("Usa o snapshot em memória", func(t *testing.T) {
		service := newTestService(mockIntegrator, mockRepo)
		stored := domain.ImportSnapshot{TotalPayable: decimal.NewFromInt(10)}
		service.snapshot.Commit(service.snapshot.Begin(), stored)

		snapshot, err := service.Snapshot(context.Background())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(snapshot.TotalPayable))
	})

	t.Run("Reconstrói a partir do banco", func(t *testing.T) {
		service := newTestService(mockIntegrator, mockRepo)
		later := importNow.Add(time.Hour)
		payment := imported("pag_1", domain.EntryTypeOutflow, "20")
		payment.ImportedAt = later
		receipt := imported("rec_1", domain.EntryTypeInflow, "80")
		receipt.ImportedAt = later

		mockRepo.EXPECT().List(gomock.Any()).Return([]domain.ImportedEntry{payment, receipt}, nil)

		snapshot, err := service.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Len(t, snapshot.Payments, 1)
		assert.Len(t, snapshot.Receipts, 1)
		assert.True(t, decimal.NewFromInt(80).Equal(snapshot.TotalReceivable))
		assert.Equal(t, later, snapshot.ImportedAt)

		_, cached := service.snapshot.Get()
		assert.True(t, cached)
	})

	t.Run("Ignora linhas de importações anteriores", func(t *testing.T) {
		service := newTestService(mockIntegrator, mockRepo)
		later := importNow.Add(time.Hour)
		current := imported("pag_1", domain.EntryTypeOutflow, "10")
		current.ImportedAt = later

		mockRepo.EXPECT().List(gomock.Any()).Return([]domain.ImportedEntry{
			current,
			imported("pag_2", domain.EntryTypeOutflow, "20"),
		}, nil)

		snapshot, err := service.Snapshot(context.Background())
		require.NoError(t, err)
		require.Len(t, snapshot.Payments, 1)
		assert.Equal(t, "pag_1", snapshot.Payments[0].ExternalID)
		assert.True(t, decimal.NewFromInt(10).Equal(snapshot.TotalPayable))
		assert.Empty(t, snapshot.Receipts)
	})

	t.Run("Leitura durante importação não a invalida", func(t *testing.T) {
		service := newTestService(mockIntegrator, mockRepo)

		mockRepo.EXPECT().List(gomock.Any()).Return([]domain.ImportedEntry{
			imported("pag_1", domain.EntryTypeOutflow, "10"),
		}, nil)
		mockIntegrator.EXPECT().
			FetchPayments(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, today domain.Date) ([]domain.ImportedEntry, error) {
				fromDatabase, err := service.Snapshot(ctx)
				if assert.NoError(t, err) {
					assert.True(t, decimal.NewFromInt(10).Equal(fromDatabase.TotalPayable))
				}
				return []domain.ImportedEntry{imported("pag_1", domain.EntryTypeOutflow, "99")}, nil
			})
		mockIntegrator.EXPECT().FetchReceipts(gomock.Any(), gomock.Any()).Return(nil, nil)
		mockRepo.EXPECT().Replace(gomock.Any(), gomock.Len(1)).Return(nil)

		snapshot, err := service.Run(context.Background())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(99).Equal(snapshot.TotalPayable))

		cached, ok := service.snapshot.Get()
		require.True(t, ok)
		assert.Equal(t, *snapshot, cached)
	})

	t.Run("Importação concluída durante a leitura prevalece", func(t *testing.T) {
		service := newTestService(mockIntegrator, mockRepo)
		newer := domain.ImportSnapshot{TotalPayable: decimal.NewFromInt(99)}

		mockRepo.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(ctx context.Context) ([]domain.ImportedEntry, error) {
				service.snapshot.Commit(service.snapshot.Begin(), newer)
				return []domain.ImportedEntry{imported("pag_1", domain.EntryTypeOutflow, "10")}, nil
			})

		snapshot, err := service.Snapshot(context.Background())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(99).Equal(snapshot.TotalPayable))
	})

	t.Run("Sem importação", func(t *testing.T) {
		service := newTestService(mockIntegrator, mockRepo)
		mockRepo.EXPECT().List(gomock.Any()).Return([]domain.ImportedEntry{}, nil)

		snapshot, err := service.Snapshot(context.Background())
		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, ErrNoImport)
		assert.Equal(t, apiErrors.ErrImportUnavailable, importCode(t, err))
	})
}
