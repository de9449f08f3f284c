package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPoolService struct {
	mock.Mock
}

func (m *mockPoolService) AutoPool(ctx context.Context, acID, user int64) ([]model.Row, error) {
	args := m.Called(ctx, acID, user)
	rows, _ := args.Get(0).([]model.Row)
	return rows, args.Error(1)
}

type mockThirdPartyService struct {
	mock.Mock
}

func (m *mockThirdPartyService) Track(ctx context.Context, oprID int64) ([]model.TrackItem, error) {
	args := m.Called(ctx, oprID)
	items, _ := args.Get(0).([]model.TrackItem)
	return items, args.Error(1)
}

type mockFinancialService struct {
	mock.Mock
}

func (m *mockFinancialService) Liabilities(ctx context.Context, householdID int64, typeID *int64) ([]model.Liability, error) {
	args := m.Called(ctx, householdID, typeID)
	liabilities, _ := args.Get(0).([]model.Liability)
	return liabilities, args.Error(1)
}

type applicationMocks struct {
	pool       *mockPoolService
	thirdParty *mockThirdPartyService
	financial  *mockFinancialService
}

func setupApplicationRoutes() (*echoHarness, applicationMocks) {
	mocks := applicationMocks{
		pool:       &mockPoolService{},
		thirdParty: &mockThirdPartyService{},
		financial:  &mockFinancialService{},
	}

	e, s := newTestEcho()
	h := NewApplicationHandler(s, mocks.pool, mocks.thirdParty, mocks.financial)

	e.POST("/application/:id/autopool", Handle(h.Handler, h.AutoPool, http.StatusCreated, &model.IDParam{}))
	e.GET("/thirdparty/track/:oprid", Handle(h.Handler, h.Track, http.StatusOK, &model.TrackRequest{}))
	e.GET("/financial/:id/liability", Handle(h.Handler, h.Liabilities, http.StatusOK, &model.LiabilityRequest{}))

	return &echoHarness{e}, mocks
}

func TestApplicationHandler_AutoPool(t *testing.T) {
	h, mocks := setupApplicationRoutes()
	mocks.pool.On("AutoPool", mock.Anything, int64(12), testPartyRoleID).Return([]model.Row{{"poolId": 6}}, nil)

	rec := h.do(http.MethodPost, "/application/12/autopool", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `[{"poolId":6}]`, rec.Body.String())
}

func TestApplicationHandler_Track(t *testing.T) {
	t.Run("tracks", func(t *testing.T) {
		h, mocks := setupApplicationRoutes()
		mocks.thirdParty.On("Track", mock.Anything, int64(500)).Return([]model.TrackItem{
			{ID: 1, Name: "Appraisal", Amount: decimal.NewNullDecimal(decimal.RequireFromString("450"))},
		}, nil)

		rec := h.do(http.MethodGet, "/thirdparty/track/500", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Appraisal"`)
		assert.Contains(t, rec.Body.String(), `"amount":"450"`)
	})

	t.Run("oprid beyond int64", func(t *testing.T) {
		h, mocks := setupApplicationRoutes()

		rec := h.do(http.MethodGet, "/thirdparty/track/99999999999999999999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mocks.thirdParty.AssertNotCalled(t, "Track", mock.Anything, mock.Anything)
	})

	t.Run("oprid must be numeric", func(t *testing.T) {
		h, _ := setupApplicationRoutes()

		rec := h.do(http.MethodGet, "/thirdparty/track/x1", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"oprid"}, fieldNames(decodeError(t, rec).Errors))
	})
}

func TestApplicationHandler_Liabilities(t *testing.T) {
	t.Run("default type", func(t *testing.T) {
		h, mocks := setupApplicationRoutes()
		mocks.financial.On("Liabilities", mock.Anything, int64(7), (*int64)(nil)).
			Return(nil, errs.NewNotFoundError("No liabilities found for this household", true, nil))

		rec := h.do(http.MethodGet, "/financial/7/liability", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("explicit type", func(t *testing.T) {
		h, mocks := setupApplicationRoutes()
		mocks.financial.On("Liabilities", mock.Anything, int64(7), mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 3
		})).Return([]model.Liability{{ID: 1, HouseholdID: 7, LiabilityTypeID: 3}}, nil)

		rec := h.do(http.MethodGet, "/financial/7/liability?liabilityTypeId=3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"liabilityTypeID":3`)
	})
}
