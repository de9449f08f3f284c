package handler

import (
	"context"

	"github.com/deppfellow/loan-backoffice/internal/errs"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/labstack/echo/v4"
)

type DepositService interface {
	List(ctx context.Context, loanID int64) ([]model.Deposit, error)
	Get(ctx context.Context, id int64) (*model.Deposit, error)
	Create(ctx context.Context, loanID, user int64, req *model.CreateDepositRequest) (*model.CreatedResponse, error)
	Update(ctx context.Context, id, user int64, req *model.UpdateDepositRequest) error
	Delete(ctx context.Context, id, user int64) error
}

type DepositHandler struct {
	Handler
	depositService DepositService
}

func NewDepositHandler(s *server.Server, depositService DepositService) *DepositHandler {
	return &DepositHandler{
		Handler:        NewHandler(s),
		depositService: depositService,
	}
}

func (h *DepositHandler) List(c echo.Context, req *model.IDParam) ([]model.Deposit, error) {
	loanID, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.depositService.List(c.Request().Context(), loanID)
}

func (h *DepositHandler) Get(c echo.Context, req *model.IDParam) (*model.Deposit, error) {
	id, err := resolveID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.depositService.Get(c.Request().Context(), id)
}

// Create answers 500, not 400, for a bad loan id. The request validates
// that before the body.
func (h *DepositHandler) Create(c echo.Context, req *model.CreateDepositRequest) (*model.CreatedResponse, error) {
	loanID, ok := model.ParseID(req.LoanID)
	if !ok {
		return nil, errs.NewInternalServerError()
	}
	return h.depositService.Create(c.Request().Context(), loanID, partyRole(c), req)
}

func (h *DepositHandler) Update(c echo.Context, req *model.UpdateDepositRequest) error {
	id, err := resolveID(req.ID)
	if err != nil {
		return err
	}
	return h.depositService.Update(c.Request().Context(), id, partyRole(c), req)
}

func (h *DepositHandler) Delete(c echo.Context, req *model.IDParam) error {
	id, err := resolveID(req.ID)
	if err != nil {
		return err
	}
	return h.depositService.Delete(c.Request().Context(), id, partyRole(c))
}
