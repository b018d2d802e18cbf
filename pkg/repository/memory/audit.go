package memory

import (
	"context"
	"sync"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type auditRepository struct {
	mu       sync.RWMutex
	entities map[types.AuditID]*model.AuditEntity
}

func newAuditRepository() *auditRepository {
	return &auditRepository{
		entities: make(map[types.AuditID]*model.AuditEntity),
	}
}

func copyPhase(p *model.Phase) *model.Phase {
	cp := *p
	cp.Objectives = append([]string(nil), p.Objectives...)
	return &cp
}

func copyTask(t *model.Task) *model.Task {
	cp := *t
	return &cp
}

func copyEntity(e *model.AuditEntity) *model.AuditEntity {
	cp := *e
	cp.Phases = make([]*model.Phase, 0, len(e.Phases))
	for _, p := range e.Phases {
		cp.Phases = append(cp.Phases, copyPhase(p))
	}
	cp.Tasks = make([]*model.Task, 0, len(e.Tasks))
	for _, t := range e.Tasks {
		cp.Tasks = append(cp.Tasks, copyTask(t))
	}
	return &cp
}

func (r *auditRepository) Create(ctx context.Context, entity *model.AuditEntity) (*model.AuditEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyEntity(entity)
	if created.ID == "" {
		created.ID = types.NewAuditID()
	}
	for _, p := range created.Phases {
		if p.ID == "" {
			p.ID = types.NewPhaseID()
		}
	}
	for _, t := range created.Tasks {
		if t.ID == "" {
			t.ID = types.NewTaskID()
		}
	}
	created.Status = created.Status.Normalize()
	created.LastUpdated = time.Now().UTC()

	r.entities[created.ID] = created
	return copyEntity(created), nil
}

func (r *auditRepository) Get(ctx context.Context, id types.AuditID) (*model.AuditEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.entities[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "audit entity not found", goerr.V("id", id))
	}

	return copyEntity(entity), nil
}

func (r *auditRepository) List(ctx context.Context) ([]*model.AuditEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]*model.AuditEntity, 0, len(r.entities))
	for _, e := range r.entities {
		entities = append(entities, copyEntity(e))
	}

	return entities, nil
}

func (r *auditRepository) Update(ctx context.Context, entity *model.AuditEntity) (*model.AuditEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.entities[entity.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "audit entity not found", goerr.V("id", entity.ID))
	}

	updated := copyEntity(existing)
	updated.Name = entity.Name
	updated.ResponsibleID = entity.ResponsibleID
	updated.Scope = entity.Scope
	updated.Status = entity.Status.Normalize()
	updated.Progress = entity.Progress
	updated.StartDate = entity.StartDate
	updated.LastUpdated = time.Now().UTC()

	r.entities[updated.ID] = updated
	return copyEntity(updated), nil
}

func (r *auditRepository) UpdatePhase(ctx context.Context, auditID types.AuditID, phase *model.Phase) (*model.Phase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, exists := r.entities[auditID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "audit entity not found", goerr.V("id", auditID))
	}

	for i, p := range entity.Phases {
		if p.ID == phase.ID {
			entity.Phases[i] = copyPhase(phase)
			entity.LastUpdated = time.Now().UTC()
			return copyPhase(phase), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "phase not found",
		goerr.V("auditID", auditID), goerr.V("phaseID", phase.ID))
}

func (r *auditRepository) UpdateTask(ctx context.Context, auditID types.AuditID, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, exists := r.entities[auditID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "audit entity not found", goerr.V("id", auditID))
	}

	for i, t := range entity.Tasks {
		if t.ID == task.ID {
			entity.Tasks[i] = copyTask(task)
			entity.LastUpdated = time.Now().UTC()
			return copyTask(task), nil
		}
	}

	return nil, goerr.Wrap(ErrNotFound, "task not found",
		goerr.V("auditID", auditID), goerr.V("taskID", task.ID))
}

// lookup returns name and scope for a join onto risks/criteria. Used by the
// sibling repositories under their own locks.
func (r *auditRepository) lookup(id types.AuditID) (name, scope string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.entities[id]
	if !exists {
		return "", "", false
	}
	return entity.Name, entity.Scope, true
}
