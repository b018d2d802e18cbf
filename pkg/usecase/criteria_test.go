package usecase_test

import (
	"context"
	"testing"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/repository/memory"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCriterionCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.NewCriterionUseCase(repo)

	entity, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Islacana Investments"})
	gt.NoError(t, err).Required()

	t.Run("valid row is stored joined", func(t *testing.T) {
		created, err := uc.Create(ctx, plannerViewer, &model.CLACriterion{
			AuditID:   entity.ID,
			Criterion: "C-01",
			Complies:  types.ComplianceYes,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.EntityName).Equal("Islacana Investments")
	})

	t.Run("audit_id and a valid compliance value are required", func(t *testing.T) {
		_, err := uc.Create(ctx, plannerViewer, &model.CLACriterion{
			Criterion: "C-02", Complies: types.ComplianceNo,
		})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)

		_, err = uc.Create(ctx, plannerViewer, &model.CLACriterion{
			AuditID: entity.ID, Criterion: "C-02", Complies: "Quizás",
		})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("viewer may not create", func(t *testing.T) {
		_, err := uc.Create(ctx, viewerViewer, &model.CLACriterion{
			AuditID: entity.ID, Complies: types.ComplianceNA,
		})
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})
}

func TestCriterionUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.NewCriterionUseCase(repo)

	entity, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Entidad"})
	gt.NoError(t, err).Required()

	created, err := uc.Create(ctx, plannerViewer, &model.CLACriterion{
		AuditID: entity.ID, Criterion: "C-02", Complies: types.ComplianceNo,
	})
	gt.NoError(t, err).Required()

	created.Complies = types.ComplianceYes
	updated, err := uc.Update(ctx, plannerViewer, created)
	gt.NoError(t, err).Required()
	gt.Value(t, updated.Complies).Equal(types.ComplianceYes)

	_, err = uc.Update(ctx, plannerViewer, &model.CLACriterion{
		ID: types.NewCriterionID(), Complies: types.ComplianceYes,
	})
	gt.Error(t, err).Is(usecase.ErrCriterionNotFound)
}

func TestCriterionList(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.NewCriterionUseCase(repo)

	mine, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Mía", ResponsibleID: "p1"})
	gt.NoError(t, err).Required()
	other, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Ajena", ResponsibleID: "p2"})
	gt.NoError(t, err).Required()

	for _, id := range []types.AuditID{mine.ID, other.ID} {
		_, err := uc.Create(ctx, plannerViewer, &model.CLACriterion{
			AuditID: id, Criterion: "C-01", Complies: types.ComplianceYes,
		})
		gt.NoError(t, err).Required()
	}

	criteria, err := uc.List(ctx, access.Viewer{Role: types.RoleAuditor, PersonID: "p1"}, "")
	gt.NoError(t, err).Required()
	gt.Array(t, criteria).Length(1)
	gt.Value(t, criteria[0].EntityName).Equal("Mía")
}
