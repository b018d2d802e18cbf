package memory

import (
	"context"
	"sync"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type criterionRepository struct {
	mu       sync.RWMutex
	criteria map[types.CriterionID]*model.CLACriterion
	audits   *auditRepository
}

func newCriterionRepository(audits *auditRepository) *criterionRepository {
	return &criterionRepository{
		criteria: make(map[types.CriterionID]*model.CLACriterion),
		audits:   audits,
	}
}

func (r *criterionRepository) join(c *model.CLACriterion) *model.CLACriterion {
	cp := *c
	if name, _, ok := r.audits.lookup(c.AuditID); ok {
		cp.EntityName = name
	}
	return &cp
}

func (r *criterionRepository) Create(ctx context.Context, criterion *model.CLACriterion) (*model.CLACriterion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *criterion
	if cp.ID == "" {
		cp.ID = types.NewCriterionID()
	}
	cp.EntityName = ""

	r.criteria[cp.ID] = &cp
	return r.join(&cp), nil
}

func (r *criterionRepository) Get(ctx context.Context, id types.CriterionID) (*model.CLACriterion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	criterion, exists := r.criteria[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "criterion not found", goerr.V("id", id))
	}

	return r.join(criterion), nil
}

func (r *criterionRepository) List(ctx context.Context) ([]*model.CLACriterion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	criteria := make([]*model.CLACriterion, 0, len(r.criteria))
	for _, c := range r.criteria {
		criteria = append(criteria, r.join(c))
	}

	return criteria, nil
}

func (r *criterionRepository) Update(ctx context.Context, criterion *model.CLACriterion) (*model.CLACriterion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.criteria[criterion.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "criterion not found", goerr.V("id", criterion.ID))
	}

	cp := *criterion
	cp.EntityName = ""

	r.criteria[cp.ID] = &cp
	return r.join(&cp), nil
}
