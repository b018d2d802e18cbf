package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// PlannerUseCase handles the reusable task planner catalogue and the open
// area vocabulary.
type PlannerUseCase struct {
	repo interfaces.Repository
}

func NewPlannerUseCase(repo interfaces.Repository) *PlannerUseCase {
	return &PlannerUseCase{repo: repo}
}

// List returns all planner entries
func (uc *PlannerUseCase) List(ctx context.Context) ([]*model.TaskPlannerEntry, error) {
	entries, err := uc.repo.Planner().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list planner entries")
	}
	return entries, nil
}

// Create stores a new planner entry
func (uc *PlannerUseCase) Create(ctx context.Context, viewer access.Viewer, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error) {
	if !access.Can(viewer.Role, access.ActionEditPlanner) {
		return nil, goerr.Wrap(ErrForbidden, "planner edit not allowed", goerr.V("role", viewer.Role))
	}
	if entry.Task == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "task description is required")
	}

	created, err := uc.repo.Planner().Create(ctx, entry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create planner entry")
	}

	return created, nil
}

// Update replaces a planner entry
func (uc *PlannerUseCase) Update(ctx context.Context, viewer access.Viewer, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error) {
	if !access.Can(viewer.Role, access.ActionEditPlanner) {
		return nil, goerr.Wrap(ErrForbidden, "planner edit not allowed", goerr.V("role", viewer.Role))
	}
	if entry.Task == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "task description is required")
	}

	updated, err := uc.repo.Planner().Update(ctx, entry)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrEntryNotFound, "no such planner entry", goerr.V("id", entry.ID))
		}
		return nil, goerr.Wrap(err, "failed to update planner entry", goerr.V("id", entry.ID))
	}

	return updated, nil
}

// Delete removes a planner entry
func (uc *PlannerUseCase) Delete(ctx context.Context, viewer access.Viewer, id types.EntryID) error {
	if !access.Can(viewer.Role, access.ActionEditPlanner) {
		return goerr.Wrap(ErrForbidden, "planner edit not allowed", goerr.V("role", viewer.Role))
	}

	if err := uc.repo.Planner().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrEntryNotFound, "no such planner entry", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete planner entry", goerr.V("id", id))
	}

	return nil
}

// ListAreas returns the area vocabulary, sorted
func (uc *PlannerUseCase) ListAreas(ctx context.Context) ([]string, error) {
	areas, err := uc.repo.Area().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list areas")
	}
	return areas, nil
}

// AddArea adds a name to the area vocabulary. Adding an existing name is a
// no-op, not an error.
func (uc *PlannerUseCase) AddArea(ctx context.Context, viewer access.Viewer, name string) error {
	if !access.Can(viewer.Role, access.ActionManageAreas) {
		return goerr.Wrap(ErrForbidden, "area management not allowed", goerr.V("role", viewer.Role))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return goerr.Wrap(ErrInvalidInput, "area name is required")
	}

	if err := uc.repo.Area().Add(ctx, name); err != nil {
		return goerr.Wrap(err, "failed to add area", goerr.V("name", name))
	}

	return nil
}
