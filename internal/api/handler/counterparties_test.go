package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cash-position-api/internal/domain"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry"
	"github.com/vfg2006/cash-position-api/internal/usecases/registry/mocks"
	"github.com/vfg2006/cash-position-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListCounterparties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCounterpartyService(ctrl)
	h := ListCounterparties(mockService)

	t.Run("Lista vazia vira array", func(t *testing.T) {
		mockService.EXPECT().List(gomock.Any(), "").Return(nil, nil)

		rec := serve(t, http.MethodGet, "/v1/counterparties", h, "/v1/counterparties", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Tipo inválido", func(t *testing.T) {
		mockService.EXPECT().List(gomock.Any(), "Parceiro").
			Return(nil, &registry.RegistryError{Err: registry.ErrInvalidKind, Code: apiErrors.ErrInvalidRequest})

		rec := serve(t, http.MethodGet, "/v1/counterparties", h, "/v1/counterparties?kind=Parceiro", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})
}

func TestCreateCounterparty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockCounterpartyService(ctrl)
	h := CreateCounterparty(mockService)

	t.Run("Cria fornecedor", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), domain.CounterpartySupplier, "Light").
			Return(&domain.Counterparty{ID: 7, Kind: domain.CounterpartySupplier, Description: "Light"}, nil)

		rec := serve(t, http.MethodPost, "/v1/counterparties", h, "/v1/counterparties", `{"kind":"Fornecedor","description":"Light"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created domain.Counterparty
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, 7, created.ID)
	})

	t.Run("Descrição vazia", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), domain.CounterpartyClient, "").
			Return(nil, &registry.RegistryError{Err: registry.ErrDescriptionRequired, Code: apiErrors.ErrMissingRequiredData})

		rec := serve(t, http.MethodPost, "/v1/counterparties", h, "/v1/counterparties", `{"kind":"Cliente","description":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})
}
