package handler

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/labstack/echo/v4"
)

type ConditionService interface {
	List(ctx context.Context, acID, user int64) ([]model.Row, error)
	Retrieve(ctx context.Context, id, user int64) ([]model.Row, error)
	Configure(ctx context.Context, acID, user int64) ([]model.Row, error)
	Create(ctx context.Context, acID, user int64, req *model.CreateConditionRequest) (model.Row, error)
	Update(ctx context.Context, id, user int64, req *model.UpdateConditionRequest) (model.Row, error)
	StageMet(ctx context.Context, acID, stage, user int64) ([]model.Row, error)
	StageMetFlag(ctx context.Context, acID, stage, user int64) (*model.StageMetFlag, error)
	ProcessFromStatus(ctx context.Context, acID, statusTypeID, user int64) ([]model.Row, error)
	ProcessFromCondition(ctx context.Context, id, user int64) ([]model.Row, error)
}

type ConditionHandler struct {
	Handler
	conditionService ConditionService
}

func NewConditionHandler(s *server.Server, conditionService ConditionService) *ConditionHandler {
	return &ConditionHandler{
		Handler:          NewHandler(s),
		conditionService: conditionService,
	}
}

func (h *ConditionHandler) List(c echo.Context, req *model.IDParam) ([]model.Row, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.List(c.Request().Context(), acID, partyRole(c))
}

func (h *ConditionHandler) Retrieve(c echo.Context, req *model.IDParam) ([]model.Row, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.Retrieve(c.Request().Context(), id, partyRole(c))
}

func (h *ConditionHandler) Configure(c echo.Context, req *model.IDParam) ([]model.Row, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.Configure(c.Request().Context(), acID, partyRole(c))
}

func (h *ConditionHandler) Create(c echo.Context, req *model.CreateConditionRequest) (model.Row, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.Create(c.Request().Context(), acID, partyRole(c), req)
}

func (h *ConditionHandler) Update(c echo.Context, req *model.UpdateConditionRequest) (model.Row, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.Update(c.Request().Context(), id, partyRole(c), req)
}

func (h *ConditionHandler) StageMet(c echo.Context, req *model.StageRequest) ([]model.Row, error) {
	acID, stage, err := resolveStage(req)
	if err != nil {
		return nil, err
	}
	return h.conditionService.StageMet(c.Request().Context(), acID, stage, partyRole(c))
}

func (h *ConditionHandler) StageMetFlag(c echo.Context, req *model.StageRequest) (*model.StageMetFlag, error) {
	acID, stage, err := resolveStage(req)
	if err != nil {
		return nil, err
	}
	return h.conditionService.StageMetFlag(c.Request().Context(), acID, stage, partyRole(c))
}

func (h *ConditionHandler) ProcessFromStatus(c echo.Context, req *model.ProcessFromStatusRequest) ([]model.Row, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	statusID, err := resolveID(req.StatusID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.ProcessFromStatus(c.Request().Context(), acID, statusID, partyRole(c))
}

func (h *ConditionHandler) ProcessFromCondition(c echo.Context, req *model.IDParam) ([]model.Row, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.conditionService.ProcessFromCondition(c.Request().Context(), id, partyRole(c))
}

func resolveStage(req *model.StageRequest) (int64, int64, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return 0, 0, err
	}
	stage, err := resolveID(req.Stage)
	if err != nil {
		return 0, 0, err
	}
	return acID, stage, nil
}
