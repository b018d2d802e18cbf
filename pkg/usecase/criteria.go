package usecase

import (
	"context"
	"errors"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// CriterionUseCase handles the legal compliance (CLA) checklist
type CriterionUseCase struct {
	repo interfaces.Repository
}

func NewCriterionUseCase(repo interfaces.Repository) *CriterionUseCase {
	return &CriterionUseCase{repo: repo}
}

// List returns criteria belonging to entities visible to the viewer,
// filtered by the search term against entity name or criterion code.
func (uc *CriterionUseCase) List(ctx context.Context, viewer access.Viewer, searchTerm string) ([]*model.CLACriterion, error) {
	entities, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities")
	}
	criteria, err := uc.repo.Criterion().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list criteria")
	}

	visible := access.FilterEntities(entities, viewer, "")
	return access.FilterCriteria(criteria, visible, searchTerm), nil
}

// Create stores a new criterion row
func (uc *CriterionUseCase) Create(ctx context.Context, viewer access.Viewer, criterion *model.CLACriterion) (*model.CLACriterion, error) {
	if !access.Can(viewer.Role, access.ActionEditCriterion) {
		return nil, goerr.Wrap(ErrForbidden, "criterion creation not allowed", goerr.V("role", viewer.Role))
	}
	if criterion.AuditID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "audit_id is required")
	}
	if !criterion.Complies.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown compliance value", goerr.V("complies", criterion.Complies))
	}

	created, err := uc.repo.Criterion().Create(ctx, criterion)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create criterion")
	}

	return created, nil
}

// Update replaces a criterion row
func (uc *CriterionUseCase) Update(ctx context.Context, viewer access.Viewer, criterion *model.CLACriterion) (*model.CLACriterion, error) {
	if !access.Can(viewer.Role, access.ActionEditCriterion) {
		return nil, goerr.Wrap(ErrForbidden, "criterion edit not allowed", goerr.V("role", viewer.Role))
	}
	if !criterion.Complies.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "unknown compliance value", goerr.V("complies", criterion.Complies))
	}

	updated, err := uc.repo.Criterion().Update(ctx, criterion)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrCriterionNotFound, "no such criterion", goerr.V("id", criterion.ID))
		}
		return nil, goerr.Wrap(err, "failed to update criterion", goerr.V("id", criterion.ID))
	}

	return updated, nil
}
