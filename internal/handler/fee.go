package handler

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/labstack/echo/v4"
)

type FeeService interface {
	List(ctx context.Context, acID int64) ([]model.ApplicationContainerFee, error)
	Get(ctx context.Context, id int64) (*model.ApplicationContainerFee, error)
	Create(ctx context.Context, acID, user int64, req *model.FeeRequest) (*model.CreatedResponse, error)
	Update(ctx context.Context, id, user int64, req *model.FeeRequest) error
	Delete(ctx context.Context, id, user int64) error
}

type FeeHandler struct {
	Handler
	feeService FeeService
}

func NewFeeHandler(s *server.Server, feeService FeeService) *FeeHandler {
	return &FeeHandler{
		Handler:    NewHandler(s),
		feeService: feeService,
	}
}

func (h *FeeHandler) List(c echo.Context, req *model.IDParam) ([]model.ApplicationContainerFee, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.feeService.List(c.Request().Context(), acID)
}

func (h *FeeHandler) Get(c echo.Context, req *model.IDParam) (*model.ApplicationContainerFee, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.feeService.Get(c.Request().Context(), id)
}

func (h *FeeHandler) Create(c echo.Context, req *model.FeeRequest) (*model.CreatedResponse, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.feeService.Create(c.Request().Context(), acID, partyRole(c), req)
}

func (h *FeeHandler) Update(c echo.Context, req *model.FeeRequest) error {
	id, err := resolveID(req.ID)
	if err != nil {
		return err
	}
	return h.feeService.Update(c.Request().Context(), id, partyRole(c), req)
}

func (h *FeeHandler) Delete(c echo.Context, req *model.IDParam) error {
	id, err := resolveID(req.ID)
	if err != nil {
		return err
	}
	return h.feeService.Delete(c.Request().Context(), id, partyRole(c))
}
