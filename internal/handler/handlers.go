package handler

import (
	"github.com/deppfellow/loan-backoffice/internal/server"
	"github.com/deppfellow/loan-backoffice/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health        *HealthHandler
	OpenAPI       *OpenAPIHandler
	Condition     *ConditionHandler
	Deposit       *DepositHandler
	Fee           *FeeHandler
	FinalApproval *FinalApprovalHandler
	Application   *ApplicationHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(s),
		OpenAPI:       NewOpenAPIHandler(s),
		Condition:     NewConditionHandler(s, services.Condition),
		Deposit:       NewDepositHandler(s, services.Deposit),
		Fee:           NewFeeHandler(s, services.Fee),
		FinalApproval: NewFinalApprovalHandler(s, services.FinalApproval),
		Application:   NewApplicationHandler(s, services.Pool, services.ThirdParty, services.Financial),
	}
}
