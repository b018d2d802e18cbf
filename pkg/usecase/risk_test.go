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

func newRiskUseCase(t *testing.T) (*usecase.RiskUseCase, *model.AuditEntity) {
	t.Helper()
	repo := memory.New()
	entity, err := repo.Audit().Create(context.Background(), &model.AuditEntity{
		Name:  "Islacana Investments",
		Scope: "Auditoría Financiera Anual 2024",
	})
	gt.NoError(t, err).Required()
	return usecase.NewRiskUseCase(repo), entity
}

func TestRiskCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("scores are derived, never taken from the client", func(t *testing.T) {
		uc, entity := newRiskUseCase(t)

		created, err := uc.Create(ctx, plannerViewer, &model.RiskControl{
			AuditID:              entity.ID,
			RiskDescription:      "Cálculo incorrecto de beneficios",
			Impact:               5,
			Probability:          4,
			ControlEffectiveness: 2,
			InherentRisk:         1,      // stale client value
			ResidualRisk:         1,      // stale client value
			TrafficLightLevel:    "Bajo", // stale client value
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.InherentRisk).Equal(20)
		gt.Value(t, created.ResidualRisk).Equal(10.00)
		gt.Value(t, created.TrafficLightLevel).Equal(types.RiskLevelHigh)
		gt.Value(t, created.EntityName).Equal("Islacana Investments")
	})

	t.Run("score inputs are range-checked", func(t *testing.T) {
		uc, entity := newRiskUseCase(t)

		bad := []*model.RiskControl{
			{AuditID: entity.ID, Impact: 0, Probability: 3, ControlEffectiveness: 3},
			{AuditID: entity.ID, Impact: 6, Probability: 3, ControlEffectiveness: 3},
			{AuditID: entity.ID, Impact: 3, Probability: 0, ControlEffectiveness: 3},
			{AuditID: entity.ID, Impact: 3, Probability: 3, ControlEffectiveness: 6},
			{AuditID: entity.ID, Impact: 3, Probability: 3, ControlEffectiveness: -1},
		}
		for _, risk := range bad {
			_, err := uc.Create(ctx, plannerViewer, risk)
			gt.Error(t, err).Is(usecase.ErrInvalidInput)
		}

		// Zero effectiveness is a legal input (no controls yet)
		_, err := uc.Create(ctx, plannerViewer, &model.RiskControl{
			AuditID: entity.ID, Impact: 3, Probability: 3, ControlEffectiveness: 0,
		})
		gt.NoError(t, err)
	})

	t.Run("the referenced entity must exist", func(t *testing.T) {
		uc, _ := newRiskUseCase(t)

		_, err := uc.Create(ctx, plannerViewer, &model.RiskControl{
			AuditID: types.NewAuditID(), Impact: 3, Probability: 3, ControlEffectiveness: 3,
		})
		gt.Error(t, err).Is(usecase.ErrAuditNotFound)

		_, err = uc.Create(ctx, plannerViewer, &model.RiskControl{
			Impact: 3, Probability: 3, ControlEffectiveness: 3,
		})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})

	t.Run("viewer may not create risks", func(t *testing.T) {
		uc, entity := newRiskUseCase(t)

		_, err := uc.Create(ctx, viewerViewer, &model.RiskControl{
			AuditID: entity.ID, Impact: 3, Probability: 3, ControlEffectiveness: 3,
		})
		gt.Error(t, err).Is(usecase.ErrForbidden)
	})
}

func TestRiskUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("rescores even when only narrative fields changed", func(t *testing.T) {
		uc, entity := newRiskUseCase(t)

		created, err := uc.Create(ctx, plannerViewer, &model.RiskControl{
			AuditID: entity.ID, RiskDescription: "antes",
			Impact: 4, Probability: 3, ControlEffectiveness: 3,
		})
		gt.NoError(t, err).Required()

		created.RiskDescription = "después"
		created.InherentRisk = 0 // simulate a client that dropped the derived fields
		updated, err := uc.Update(ctx, plannerViewer, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.RiskDescription).Equal("después")
		gt.Value(t, updated.InherentRisk).Equal(12)
		gt.Value(t, updated.TrafficLightLevel).Equal(types.RiskLevelMedium)
	})

	t.Run("unknown risk", func(t *testing.T) {
		uc, _ := newRiskUseCase(t)

		_, err := uc.Update(ctx, plannerViewer, &model.RiskControl{
			ID: types.NewRiskID(), Impact: 3, Probability: 3, ControlEffectiveness: 3,
		})
		gt.Error(t, err).Is(usecase.ErrRiskNotFound)
	})
}

func TestRiskDelete(t *testing.T) {
	ctx := context.Background()
	uc, entity := newRiskUseCase(t)

	created, err := uc.Create(ctx, plannerViewer, &model.RiskControl{
		AuditID: entity.ID, Impact: 1, Probability: 1, ControlEffectiveness: 1,
	})
	gt.NoError(t, err).Required()

	gt.Error(t, uc.Delete(ctx, viewerViewer, created.ID)).Is(usecase.ErrForbidden)
	gt.NoError(t, uc.Delete(ctx, plannerViewer, created.ID))
	gt.Error(t, uc.Delete(ctx, plannerViewer, created.ID)).Is(usecase.ErrRiskNotFound)
}

func TestRiskList(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.NewRiskUseCase(repo)

	e1, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Mía", ResponsibleID: "p1"})
	gt.NoError(t, err).Required()
	e2, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Ajena", ResponsibleID: "p2"})
	gt.NoError(t, err).Required()

	for _, id := range []types.AuditID{e1.ID, e2.ID} {
		_, err := uc.Create(ctx, plannerViewer, &model.RiskControl{
			AuditID: id, RiskDescription: "riesgo",
			Impact: 3, Probability: 3, ControlEffectiveness: 3,
		})
		gt.NoError(t, err).Required()
	}

	t.Run("auditor only sees risks of assigned entities", func(t *testing.T) {
		risks, err := uc.List(ctx, access.Viewer{Role: types.RoleAuditor, PersonID: "p1"}, "")
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].EntityName).Equal("Mía")
	})

	t.Run("search matches the joined entity name", func(t *testing.T) {
		risks, err := uc.List(ctx, masterViewer, "ajena")
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
	})
}
