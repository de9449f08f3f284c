package service

import (
	"github.com/deppfellow/loan-backoffice/internal/repository"
	"github.com/deppfellow/loan-backoffice/internal/server"
)

type Services struct {
	Auth          *AuthService
	Audit         *AuditService
	PartyRole     *PartyRoleService
	Condition     *ConditionService
	Deposit       *DepositService
	Fee           *FeeService
	FinalApproval *FinalApprovalService
	Pool          *PoolService
	ThirdParty    *ThirdPartyService
	Financial     *FinancialService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)
	auditService := NewAuditService(repos.Audit)

	return &Services{
		Auth:          authService,
		Audit:         auditService,
		PartyRole:     NewPartyRoleService(repos.PartyRole, s.Cache, s.Config.Cache.PartyRoleTTL),
		Condition:     NewConditionService(repos.Condition, auditService),
		Deposit:       NewDepositService(repos.Deposit, auditService),
		Fee:           NewFeeService(repos.Fee, auditService),
		FinalApproval: NewFinalApprovalService(repos.FinalApproval, auditService, s.Job),
		Pool:          NewPoolService(repos.Pool, auditService),
		ThirdParty:    NewThirdPartyService(repos.ThirdParty, s.Cache, s.Config.Cache.TrackReportTTL),
		Financial:     NewFinancialService(repos.Liability),
	}, nil
}
