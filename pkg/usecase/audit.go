package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AuditUseCase handles audit entity lifecycle: creation with the standard
// phase cadence, role-filtered listing, and phase/task updates.
type AuditUseCase struct {
	repo interfaces.Repository
}

func NewAuditUseCase(repo interfaces.Repository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List returns the entities visible to the viewer, optionally narrowed by a
// search term.
func (uc *AuditUseCase) List(ctx context.Context, viewer access.Viewer, searchTerm string) ([]*model.AuditEntity, error) {
	entities, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities")
	}

	return access.FilterEntities(entities, viewer, searchTerm), nil
}

// Get returns one entity. An Auditor can only fetch entities they are
// responsible for.
func (uc *AuditUseCase) Get(ctx context.Context, viewer access.Viewer, id types.AuditID) (*model.AuditEntity, error) {
	entity, err := uc.repo.Audit().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAuditNotFound, "no such entity", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get audit entity", goerr.V("id", id))
	}

	if viewer.Role == types.RoleAuditor && entity.ResponsibleID != viewer.PersonID {
		return nil, goerr.Wrap(ErrForbidden, "entity not assigned to viewer", goerr.V("id", id))
	}

	return entity, nil
}

// Create stores a new entity. When no phases are supplied the standard
// five-phase cadence is seeded.
func (uc *AuditUseCase) Create(ctx context.Context, viewer access.Viewer, entity *model.AuditEntity) (*model.AuditEntity, error) {
	if !access.Can(viewer.Role, access.ActionCreateEntity) {
		return nil, goerr.Wrap(ErrForbidden, "entity creation not allowed", goerr.V("role", viewer.Role))
	}
	if entity.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "entity name is required")
	}

	create := *entity
	create.Status = create.Status.Normalize()
	if len(create.Phases) == 0 {
		create.Phases = model.StandardPhases()
	}

	created, err := uc.repo.Audit().Create(ctx, &create)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create audit entity", goerr.V("name", entity.Name))
	}

	return created, nil
}

// Update replaces the entity's own fields. Phases and tasks are updated
// through their dedicated operations.
func (uc *AuditUseCase) Update(ctx context.Context, viewer access.Viewer, entity *model.AuditEntity) (*model.AuditEntity, error) {
	if !access.Can(viewer.Role, access.ActionEditEntity) {
		return nil, goerr.Wrap(ErrForbidden, "entity edit not allowed", goerr.V("role", viewer.Role))
	}
	if entity.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "entity name is required")
	}

	updated, err := uc.repo.Audit().Update(ctx, entity)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAuditNotFound, "no such entity", goerr.V("id", entity.ID))
		}
		return nil, goerr.Wrap(err, "failed to update audit entity", goerr.V("id", entity.ID))
	}

	return updated, nil
}

// UpdatePhase replaces one phase of an entity. The phase name is immutable,
// and a payload that omits start_week or objectives keeps the stored values.
// When the duration deviates from the standard cadence for that phase name,
// a persistent note is set on the phase; returning to the standard clears
// it. The returned alert is non-nil only when this edit changed the
// duration, and is never stored.
func (uc *AuditUseCase) UpdatePhase(ctx context.Context, viewer access.Viewer, auditID types.AuditID, phase *model.Phase) (*model.Phase, *model.PhaseAlert, error) {
	if !access.Can(viewer.Role, access.ActionEditEntity) {
		return nil, nil, goerr.Wrap(ErrForbidden, "phase edit not allowed", goerr.V("role", viewer.Role))
	}
	if phase.DurationWeeks < 1 {
		return nil, nil, goerr.Wrap(ErrInvalidInput, "phase duration must be at least 1 week")
	}

	entity, err := uc.repo.Audit().Get(ctx, auditID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, nil, goerr.Wrap(ErrAuditNotFound, "no such entity", goerr.V("id", auditID))
		}
		return nil, nil, goerr.Wrap(err, "failed to get audit entity", goerr.V("id", auditID))
	}

	prev := entity.Phase(phase.ID)
	if prev == nil {
		return nil, nil, goerr.Wrap(ErrPhaseNotFound, "no such phase", goerr.V("audit_id", auditID), goerr.V("phase_id", phase.ID))
	}

	next := *phase
	next.Name = prev.Name
	if next.StartWeek < 1 {
		next.StartWeek = prev.StartWeek
	}
	if len(next.Objectives) == 0 {
		next.Objectives = prev.Objectives
	}
	next.Status = next.Status.Normalize()
	if std := model.StandardDurationWeeks(next.Name); std > 0 && next.DurationWeeks != std {
		next.AlertNote = fmt.Sprintf("Duración modificada: el estándar para esta fase es de %d semanas.", std)
	} else {
		next.AlertNote = ""
	}

	alert := model.NewPhaseAlert(auditID, prev, &next)

	updated, err := uc.repo.Audit().UpdatePhase(ctx, auditID, &next)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to update phase", goerr.V("audit_id", auditID), goerr.V("phase_id", phase.ID))
	}

	return updated, alert, nil
}

// UpdatePhaseStatus changes only the status of a phase. Unlike full phase
// edits this is open to auditors.
func (uc *AuditUseCase) UpdatePhaseStatus(ctx context.Context, viewer access.Viewer, auditID types.AuditID, phaseID types.PhaseID, status types.AuditStatus) (*model.Phase, error) {
	if !access.Can(viewer.Role, access.ActionUpdatePhaseStatus) {
		return nil, goerr.Wrap(ErrForbidden, "phase status update not allowed", goerr.V("role", viewer.Role))
	}
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown phase status", goerr.V("status", status))
	}

	entity, err := uc.repo.Audit().Get(ctx, auditID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAuditNotFound, "no such entity", goerr.V("id", auditID))
		}
		return nil, goerr.Wrap(err, "failed to get audit entity", goerr.V("id", auditID))
	}

	phase := entity.Phase(phaseID)
	if phase == nil {
		return nil, goerr.Wrap(ErrPhaseNotFound, "no such phase", goerr.V("audit_id", auditID), goerr.V("phase_id", phaseID))
	}

	next := *phase
	next.Status = status

	updated, err := uc.repo.Audit().UpdatePhase(ctx, auditID, &next)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update phase status", goerr.V("audit_id", auditID), goerr.V("phase_id", phaseID))
	}

	return updated, nil
}

// UpdateTask replaces one task of an entity and recomputes the entity's
// progress from its completed task ratio.
func (uc *AuditUseCase) UpdateTask(ctx context.Context, viewer access.Viewer, auditID types.AuditID, task *model.Task) (*model.Task, error) {
	if !access.Can(viewer.Role, access.ActionUpdateTask) {
		return nil, goerr.Wrap(ErrForbidden, "task update not allowed", goerr.V("role", viewer.Role))
	}
	if !task.Status.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown task status", goerr.V("status", task.Status))
	}

	entity, err := uc.repo.Audit().Get(ctx, auditID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAuditNotFound, "no such entity", goerr.V("id", auditID))
		}
		return nil, goerr.Wrap(err, "failed to get audit entity", goerr.V("id", auditID))
	}

	if entity.Task(task.ID) == nil {
		return nil, goerr.Wrap(ErrTaskNotFound, "no such task", goerr.V("audit_id", auditID), goerr.V("task_id", task.ID))
	}

	updated, err := uc.repo.Audit().UpdateTask(ctx, auditID, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("audit_id", auditID), goerr.V("task_id", task.ID))
	}

	// Progress mirrors the completed task ratio
	completed := 0
	for _, t := range entity.Tasks {
		if t.ID == task.ID {
			t = updated
		}
		if t.Status == types.TaskStatusCompleted {
			completed++
		}
	}
	if n := len(entity.Tasks); n > 0 {
		entity.Progress = completed * 100 / n
		if _, err := uc.repo.Audit().Update(ctx, entity); err != nil {
			return nil, goerr.Wrap(err, "failed to update entity progress", goerr.V("audit_id", auditID))
		}
	}

	return updated, nil
}
