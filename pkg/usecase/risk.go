package usecase

import (
	"context"
	"errors"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RiskUseCase handles the risk/control matrix. Every write path recomputes
// the derived scores so the stored row is never stale.
type RiskUseCase struct {
	repo interfaces.Repository
}

func NewRiskUseCase(repo interfaces.Repository) *RiskUseCase {
	return &RiskUseCase{repo: repo}
}

func validateRiskScores(risk *model.RiskControl) error {
	if risk.Impact < 1 || risk.Impact > 5 {
		return goerr.Wrap(ErrInvalidInput, "impact must be between 1 and 5", goerr.V("impact", risk.Impact))
	}
	if risk.Probability < 1 || risk.Probability > 5 {
		return goerr.Wrap(ErrInvalidInput, "probability must be between 1 and 5", goerr.V("probability", risk.Probability))
	}
	if risk.ControlEffectiveness < 0 || risk.ControlEffectiveness > 5 {
		return goerr.Wrap(ErrInvalidInput, "control effectiveness must be between 0 and 5", goerr.V("effectiveness", risk.ControlEffectiveness))
	}
	return nil
}

// List returns risks belonging to entities visible to the viewer, filtered
// by the search term against entity name or risk description.
func (uc *RiskUseCase) List(ctx context.Context, viewer access.Viewer, searchTerm string) ([]*model.RiskControl, error) {
	entities, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities")
	}
	risks, err := uc.repo.Risk().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list risks")
	}

	visible := access.FilterEntities(entities, viewer, "")
	return access.FilterRisks(risks, visible, searchTerm), nil
}

// Create stores a new risk row after rescoring it
func (uc *RiskUseCase) Create(ctx context.Context, viewer access.Viewer, risk *model.RiskControl) (*model.RiskControl, error) {
	if !access.Can(viewer.Role, access.ActionEditRisk) {
		return nil, goerr.Wrap(ErrForbidden, "risk creation not allowed", goerr.V("role", viewer.Role))
	}
	if risk.AuditID == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "audit_id is required")
	}
	if err := validateRiskScores(risk); err != nil {
		return nil, err
	}

	if _, err := uc.repo.Audit().Get(ctx, risk.AuditID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrAuditNotFound, "no such entity", goerr.V("audit_id", risk.AuditID))
		}
		return nil, goerr.Wrap(err, "failed to check audit entity", goerr.V("audit_id", risk.AuditID))
	}

	create := *risk
	create.Status = create.Status.Normalize()
	create.Rescore()

	created, err := uc.repo.Risk().Create(ctx, &create)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create risk")
	}

	return created, nil
}

// Update replaces a risk row. The derived scores are recomputed
// unconditionally, also when none of the scoring inputs changed.
func (uc *RiskUseCase) Update(ctx context.Context, viewer access.Viewer, risk *model.RiskControl) (*model.RiskControl, error) {
	if !access.Can(viewer.Role, access.ActionEditRisk) {
		return nil, goerr.Wrap(ErrForbidden, "risk edit not allowed", goerr.V("role", viewer.Role))
	}
	if err := validateRiskScores(risk); err != nil {
		return nil, err
	}

	update := *risk
	update.Status = update.Status.Normalize()
	update.Rescore()

	updated, err := uc.repo.Risk().Update(ctx, &update)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRiskNotFound, "no such risk", goerr.V("id", risk.ID))
		}
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V("id", risk.ID))
	}

	return updated, nil
}

// Delete removes a risk row
func (uc *RiskUseCase) Delete(ctx context.Context, viewer access.Viewer, id types.RiskID) error {
	if !access.Can(viewer.Role, access.ActionEditRisk) {
		return goerr.Wrap(ErrForbidden, "risk delete not allowed", goerr.V("role", viewer.Role))
	}

	if err := uc.repo.Risk().Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrRiskNotFound, "no such risk", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to delete risk", goerr.V("id", id))
	}

	return nil
}
