package repository

import (
	"github.com/deppfellow/loan-backoffice/internal/server"
)

type Repositories struct {
	Condition     *ConditionRepository
	Deposit       *DepositRepository
	Fee           *FeeRepository
	FinalApproval *FinalApprovalRepository
	Pool          *PoolRepository
	ThirdParty    *ThirdPartyRepository
	Liability     *LiabilityRepository
	PartyRole     *PartyRoleRepository
	Audit         *AuditRepository
}

func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.DB

	return &Repositories{
		Condition:     NewConditionRepository(db),
		Deposit:       NewDepositRepository(db),
		Fee:           NewFeeRepository(db),
		FinalApproval: NewFinalApprovalRepository(db),
		Pool:          NewPoolRepository(db),
		ThirdParty:    NewThirdPartyRepository(db),
		Liability:     NewLiabilityRepository(db),
		PartyRole:     NewPartyRoleRepository(db),
		Audit:         NewAuditRepository(db),
	}
}
