package handler

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/labstack/echo/v4"
)

type PoolService interface {
	AutoPool(ctx context.Context, acID, user int64) ([]model.Row, error)
}

type ThirdPartyService interface {
	Track(ctx context.Context, oprID int64) ([]model.TrackItem, error)
}

type FinancialService interface {
	Liabilities(ctx context.Context, householdID int64, typeID *int64) ([]model.Liability, error)
}

// ApplicationHandler serves the read mostly application side routes:
// pooling, third party tracking and household liabilities.
type ApplicationHandler struct {
	Handler
	poolService       PoolService
	thirdPartyService ThirdPartyService
	financialService  FinancialService
}

func NewApplicationHandler(s *server.Server, pool PoolService, thirdParty ThirdPartyService, financial FinancialService) *ApplicationHandler {
	return &ApplicationHandler{
		Handler:           NewHandler(s),
		poolService:       pool,
		thirdPartyService: thirdParty,
		financialService:  financial,
	}
}

func (h *ApplicationHandler) AutoPool(c echo.Context, req *model.IDParam) ([]model.Row, error) {
	acID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.poolService.AutoPool(c.Request().Context(), acID, partyRole(c))
}

func (h *ApplicationHandler) Track(c echo.Context, req *model.TrackRequest) ([]model.TrackItem, error) {
	oprID, err := resolveID(req.OprID)
	if err != nil {
		return nil, err
	}
	return h.thirdPartyService.Track(c.Request().Context(), oprID)
}

func (h *ApplicationHandler) Liabilities(c echo.Context, req *model.LiabilityRequest) ([]model.Liability, error) {
	householdID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}

	var typeID *int64
	if req.LiabilityTypeID != "" {
		id, ok := model.ParseID(req.LiabilityTypeID)
		if !ok {
			return nil, errs.NewNotFoundError("No liabilities found for this household", true, nil)
		}
		typeID = &id
	}

	return h.financialService.Liabilities(c.Request().Context(), householdID, typeID)
}
