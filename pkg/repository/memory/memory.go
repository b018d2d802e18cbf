package memory

import (
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Memory is the in-memory repository used for development and tests. It
// mirrors the Firestore repository behavior, including the server-side join
// of entity names onto risks and criteria.
type Memory struct {
	audit      *auditRepository
	person     *personRepository
	risk       *riskRepository
	criterion  *criterionRepository
	planner    *plannerRepository
	area       *areaRepository
	credential *credentialRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	auditRepo := newAuditRepository()

	return &Memory{
		audit:      auditRepo,
		person:     newPersonRepository(),
		risk:       newRiskRepository(auditRepo),
		criterion:  newCriterionRepository(auditRepo),
		planner:    newPlannerRepository(),
		area:       newAreaRepository(),
		credential: newCredentialRepository(),
	}
}

func (m *Memory) Audit() interfaces.AuditRepository {
	return m.audit
}

func (m *Memory) Person() interfaces.PersonRepository {
	return m.person
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Criterion() interfaces.CriterionRepository {
	return m.criterion
}

func (m *Memory) Planner() interfaces.PlannerRepository {
	return m.planner
}

func (m *Memory) Area() interfaces.AreaRepository {
	return m.area
}

func (m *Memory) Credential() interfaces.CredentialRepository {
	return m.credential
}

func (m *Memory) Close() error {
	return nil
}
