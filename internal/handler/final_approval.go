package handler

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/labstack/echo/v4"
)

type FinalApprovalService interface {
	List(ctx context.Context, acID int64) ([]model.FinalApprovalProcessHistory, error)
	Get(ctx context.Context, id int64) (*model.FinalApprovalProcessHistory, error)
	Latest(ctx context.Context, acID int64) (*model.FinalApprovalProcessHistory, error)
	Save(ctx context.Context, acID, user int64, req *model.SaveFinalApprovalRequest) (*model.FinalApprovalProcessHistory, error)
	Reset(ctx context.Context, id, user int64) (*model.FinalApprovalProcessHistory, error)
	Next(ctx context.Context, acID, user int64, processTypeID *int64) ([]model.Row, error)
}

type FinalApprovalHandler struct {
	Handler
	finalApprovalService FinalApprovalService
}

func NewFinalApprovalHandler(s *server.Server, finalApprovalService FinalApprovalService) *FinalApprovalHandler {
	return &FinalApprovalHandler{
		Handler:              NewHandler(s),
		finalApprovalService: finalApprovalService,
	}
}

func (h *FinalApprovalHandler) List(c echo.Context, req *model.IDParam) ([]model.FinalApprovalProcessHistory, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.finalApprovalService.List(c.Request().Context(), acID)
}

func (h *FinalApprovalHandler) Get(c echo.Context, req *model.IDParam) (*model.FinalApprovalProcessHistory, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.finalApprovalService.Get(c.Request().Context(), id)
}

func (h *FinalApprovalHandler) Latest(c echo.Context, req *model.IDParam) (*model.FinalApprovalProcessHistory, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.finalApprovalService.Latest(c.Request().Context(), acID)
}

func (h *FinalApprovalHandler) Save(c echo.Context, req *model.SaveFinalApprovalRequest) (*model.FinalApprovalProcessHistory, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.finalApprovalService.Save(c.Request().Context(), acID, partyRole(c), req)
}

func (h *FinalApprovalHandler) Reset(c echo.Context, req *model.IDParam) (*model.FinalApprovalProcessHistory, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.finalApprovalService.Reset(c.Request().Context(), id, partyRole(c))
}

func (h *FinalApprovalHandler) Next(c echo.Context, req *model.NextFinalApprovalRequest) ([]model.Row, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}

	processTypeID, ok := req.ProcessTypeID()
	if !ok {
		return nil, errs.NewNotFoundError("No next final approval step", true, nil)
	}

	return h.finalApprovalService.Next(c.Request().Context(), acID, partyRole(c), processTypeID)
}
