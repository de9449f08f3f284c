package router

import (
	"net/http"

	"github.com/deppfellow/loan-backoffice/internal/handler"
	"github.com/deppfellow/loan-backoffice/internal/model"
	"github.com/labstack/echo/v4"
)

func registerConditionRoutes(g *echo.Group, h *handler.Handlers) {
	ch := h.Condition

	g.GET("/application/:id/conditions", handler.Handle(ch.Handler, ch.List, http.StatusOK, &model.IDParam{}))
	g.PUT("/application/:id/conditions/configure", handler.Handle(ch.Handler, ch.Configure, http.StatusOK, &model.IDParam{}))
	g.POST("/application/:id/condition", handler.Handle(ch.Handler, ch.Create, http.StatusCreated, &model.CreateConditionRequest{}))
	g.GET("/application/:id/conditions/stage/:stage/met", handler.Handle(ch.Handler, ch.StageMet, http.StatusOK, &model.StageRequest{}))
	g.GET("/application/:id/conditions/stage/:stage/metflag", handler.Handle(ch.Handler, ch.StageMetFlag, http.StatusOK, &model.StageRequest{}))
	g.POST("/application/:id/conditions/process/status/:statusId", handler.Handle(ch.Handler, ch.ProcessFromStatus, http.StatusOK, &model.ProcessFromStatusRequest{}))

	g.GET("/condition/:id", handler.Handle(ch.Handler, ch.Retrieve, http.StatusOK, &model.IDParam{}))
	g.PUT("/condition/:id", handler.Handle(ch.Handler, ch.Update, http.StatusOK, &model.UpdateConditionRequest{}))
	g.POST("/condition/:id/process", handler.Handle(ch.Handler, ch.ProcessFromCondition, http.StatusOK, &model.IDParam{}))
}

func registerDepositRoutes(g *echo.Group, h *handler.Handlers) {
	dh := h.Deposit

	g.GET("/loan/:id/deposits", handler.Handle(dh.Handler, dh.List, http.StatusOK, &model.IDParam{}))
	g.POST("/loan/:id/deposit", handler.Handle(dh.Handler, dh.Create, http.StatusCreated, &model.CreateDepositRequest{}))

	g.GET("/deposit/:id", handler.Handle(dh.Handler, dh.Get, http.StatusOK, &model.IDParam{}))
	g.PUT("/deposit/:id", handler.HandleNoContent(dh.Handler, dh.Update, http.StatusOK, &model.UpdateDepositRequest{}))
	g.DELETE("/deposit/:id", handler.HandleNoContent(dh.Handler, dh.Delete, http.StatusNoContent, &model.IDParam{}))
}

func registerFeeRoutes(g *echo.Group, h *handler.Handlers) {
	fh := h.Fee

	g.GET("/application/:id/fees", handler.Handle(fh.Handler, fh.List, http.StatusOK, &model.IDParam{}))
	g.POST("/application/:id/fee", handler.Handle(fh.Handler, fh.Create, http.StatusCreated, &model.FeeRequest{}))

	g.GET("/fee/:id", handler.Handle(fh.Handler, fh.Get, http.StatusOK, &model.IDParam{}))
	g.PUT("/fee/:id", handler.HandleNoContent(fh.Handler, fh.Update, http.StatusOK, &model.FeeRequest{}))
	g.DELETE("/fee/:id", handler.HandleNoContent(fh.Handler, fh.Delete, http.StatusNoContent, &model.IDParam{}))
}

func registerFinalApprovalRoutes(g *echo.Group, h *handler.Handlers) {
	fa := h.FinalApproval

	g.GET("/application/:id/finalapprovals", handler.Handle(fa.Handler, fa.List, http.StatusOK, &model.IDParam{}))
	g.GET("/application/:id/finalapprovals/latest", handler.Handle(fa.Handler, fa.Latest, http.StatusOK, &model.IDParam{}))

	g.GET("/finalapproval/:id", handler.Handle(fa.Handler, fa.Get, http.StatusOK, &model.IDParam{}))
	g.PUT("/finalapproval/:id", handler.Handle(fa.Handler, fa.Save, http.StatusCreated, &model.SaveFinalApprovalRequest{}))
	g.PUT("/finalapproval/:id/reset", handler.Handle(fa.Handler, fa.Reset, http.StatusOK, &model.IDParam{}))
	g.GET("/finalapproval/:id/next", handler.Handle(fa.Handler, fa.Next, http.StatusOK, &model.NextFinalApprovalRequest{}))
}

func registerApplicationRoutes(g *echo.Group, h *handler.Handlers) {
	ah := h.Application

	g.POST("/application/:id/autopool", handler.Handle(ah.Handler, ah.AutoPool, http.StatusCreated, &model.IDParam{}))
	g.GET("/thirdparty/track/:oprid", handler.Handle(ah.Handler, ah.Track, http.StatusOK, &model.TrackRequest{}))
	g.GET("/financial/:id/liability", handler.Handle(ah.Handler, ah.Liabilities, http.StatusOK, &model.LiabilityRequest{}))
}
