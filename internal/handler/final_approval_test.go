package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFinalApprovalService struct {
	mock.Mock
}

func (m *mockFinalApprovalService) history(args mock.Arguments) (*model.FinalApprovalProcessHistory, error) {
	history, _ := args.Get(0).(*model.FinalApprovalProcessHistory)
	return history, args.Error(1)
}

func (m *mockFinalApprovalService) List(ctx context.Context, acID int64) ([]model.FinalApprovalProcessHistory, error) {
	args := m.Called(ctx, acID)
	list, _ := args.Get(0).([]model.FinalApprovalProcessHistory)
	return list, args.Error(1)
}

func (m *mockFinalApprovalService) Get(ctx context.Context, id int64) (*model.FinalApprovalProcessHistory, error) {
	return m.history(m.Called(ctx, id))
}

func (m *mockFinalApprovalService) Latest(ctx context.Context, acID int64) (*model.FinalApprovalProcessHistory, error) {
	return m.history(m.Called(ctx, acID))
}

func (m *mockFinalApprovalService) Save(ctx context.Context, acID, user int64, req *model.SaveFinalApprovalRequest) (*model.FinalApprovalProcessHistory, error) {
	return m.history(m.Called(ctx, acID, user, req))
}

func (m *mockFinalApprovalService) Reset(ctx context.Context, id, user int64) (*model.FinalApprovalProcessHistory, error) {
	return m.history(m.Called(ctx, id, user))
}

func (m *mockFinalApprovalService) Next(ctx context.Context, acID, user int64, processTypeID *int64) ([]model.Row, error) {
	args := m.Called(ctx, acID, user, processTypeID)
	rows, _ := args.Get(0).([]model.Row)
	return rows, args.Error(1)
}

func setupFinalApprovalRoutes(svc FinalApprovalService) *echoHarness {
	e, s := newTestEcho()
	h := NewFinalApprovalHandler(s, svc)

	e.GET("/application/:id/finalapprovals/latest", Handle(h.Handler, h.Latest, http.StatusOK, &model.IDParam{}))
	e.PUT("/finalapproval/:id", Handle(h.Handler, h.Save, http.StatusCreated, &model.SaveFinalApprovalRequest{}))
	e.PUT("/finalapproval/:id/reset", Handle(h.Handler, h.Reset, http.StatusOK, &model.IDParam{}))
	e.GET("/finalapproval/:id/next", Handle(h.Handler, h.Next, http.StatusOK, &model.NextFinalApprovalRequest{}))

	return &echoHarness{e}
}

func TestFinalApprovalHandler_Save(t *testing.T) {
	t.Run("both references are required", func(t *testing.T) {
		rec := setupFinalApprovalRoutes(&mockFinalApprovalService{}).do(http.MethodPut, "/finalapproval/12", `{}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t,
			[]string{"finalApprovalProcessType.id", "finalApprovalProcessHistory.id"},
			fieldNames(decodeError(t, rec).Errors))
	})

	t.Run("returns the new history row", func(t *testing.T) {
		svc := &mockFinalApprovalService{}
		svc.On("Save", mock.Anything, int64(12), testPartyRoleID, mock.MatchedBy(func(req *model.SaveFinalApprovalRequest) bool {
			return req.FinalApprovalProcessType.Value() == 2 && req.FinalApprovalProcessHistory.Value() == 0
		})).Return(&model.FinalApprovalProcessHistory{
			ID:                         90,
			ApplicationContainerID:     12,
			FinalApprovalProcessTypeID: 2,
			Created:                    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			CreatedByPartyRoleID:       testPartyRoleID,
		}, nil)

		rec := setupFinalApprovalRoutes(svc).do(http.MethodPut, "/finalapproval/12",
			`{"finalApprovalProcessType":{"id":2},"finalApprovalProcessHistory":{"id":0}}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"iD":90`)
		assert.Contains(t, rec.Body.String(), `"completed":null`)
		svc.AssertExpectations(t)
	})
}

func TestFinalApprovalHandler_Reset(t *testing.T) {
	svc := &mockFinalApprovalService{}
	svc.On("Reset", mock.Anything, int64(90), testPartyRoleID).Return(nil, errs.NewInternalServerError())

	rec := setupFinalApprovalRoutes(svc).do(http.MethodPut, "/finalapproval/90/reset", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFinalApprovalHandler_Latest(t *testing.T) {
	svc := &mockFinalApprovalService{}
	svc.On("Latest", mock.Anything, int64(12)).Return(nil, errs.NewNotFoundError("No final approvals for this application", true, nil))

	rec := setupFinalApprovalRoutes(svc).do(http.MethodGet, "/application/12/finalapprovals/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFinalApprovalHandler_Next(t *testing.T) {
	t.Run("without a type filter", func(t *testing.T) {
		svc := &mockFinalApprovalService{}
		svc.On("Next", mock.Anything, int64(12), testPartyRoleID, (*int64)(nil)).Return([]model.Row{{"faptId": 3}}, nil)

		rec := setupFinalApprovalRoutes(svc).do(http.MethodGet, "/finalapproval/12/next", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"faptId":3}]`, rec.Body.String())
	})

	t.Run("with a type filter", func(t *testing.T) {
		svc := &mockFinalApprovalService{}
		svc.On("Next", mock.Anything, int64(12), testPartyRoleID, mock.MatchedBy(func(id *int64) bool {
			return id != nil && *id == 2
		})).Return([]model.Row{{"faptId": 3}}, nil)

		rec := setupFinalApprovalRoutes(svc).do(http.MethodGet, "/finalapproval/12/next?finalApprovalProcessTypeId=2", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non numeric type filter", func(t *testing.T) {
		rec := setupFinalApprovalRoutes(&mockFinalApprovalService{}).do(http.MethodGet, "/finalapproval/12/next?finalApprovalProcessTypeId=x", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"finalApprovalProcessTypeId"}, fieldNames(decodeError(t, rec).Errors))
	})

	t.Run("type filter beyond int64", func(t *testing.T) {
		svc := &mockFinalApprovalService{}
		rec := setupFinalApprovalRoutes(svc).do(http.MethodGet, "/finalapproval/12/next?finalApprovalProcessTypeId=99999999999999999999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
