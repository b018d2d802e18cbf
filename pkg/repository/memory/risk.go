package memory

import (
	"context"
	"sync"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type riskRepository struct {
	mu     sync.RWMutex
	risks  map[types.RiskID]*model.RiskControl
	audits *auditRepository
}

func newRiskRepository(audits *auditRepository) *riskRepository {
	return &riskRepository{
		risks:  make(map[types.RiskID]*model.RiskControl),
		audits: audits,
	}
}

// join resolves the entity name and scope the way the Firestore backend
// does server-side.
func (r *riskRepository) join(risk *model.RiskControl) *model.RiskControl {
	cp := *risk
	if name, scope, ok := r.audits.lookup(risk.AuditID); ok {
		cp.EntityName = name
		cp.AuditScope = scope
	}
	return &cp
}

func (r *riskRepository) Create(ctx context.Context, risk *model.RiskControl) (*model.RiskControl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *risk
	if cp.ID == "" {
		cp.ID = types.NewRiskID()
	}
	cp.Status = cp.Status.Normalize()
	cp.EntityName = ""
	cp.AuditScope = ""

	r.risks[cp.ID] = &cp
	return r.join(&cp), nil
}

func (r *riskRepository) Get(ctx context.Context, id types.RiskID) (*model.RiskControl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risk, exists := r.risks[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	return r.join(risk), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.RiskControl, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	risks := make([]*model.RiskControl, 0, len(r.risks))
	for _, risk := range r.risks {
		risks = append(risks, r.join(risk))
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.RiskControl) (*model.RiskControl, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.risks[risk.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", risk.ID))
	}

	cp := *risk
	cp.Status = cp.Status.Normalize()
	cp.EntityName = ""
	cp.AuditScope = ""

	r.risks[cp.ID] = &cp
	return r.join(&cp), nil
}

func (r *riskRepository) Delete(ctx context.Context, id types.RiskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.risks[id]; !exists {
		return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
	}

	delete(r.risks, id)
	return nil
}
