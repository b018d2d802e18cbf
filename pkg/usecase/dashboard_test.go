package usecase_test

import (
	"context"
	"testing"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/repository/memory"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func seedDashboardData(t *testing.T) interfaces.Repository {
	t.Helper()
	ctx := context.Background()
	repo := memory.New()

	completed, err := repo.Audit().Create(ctx, &model.AuditEntity{
		Name:          "Islacana Investments",
		ResponsibleID: "p1",
		Status:        types.AuditStatusCompleted,
		Progress:      100,
	})
	gt.NoError(t, err).Required()

	phases := model.StandardPhases()
	phases[1].DurationWeeks = 4
	phases[1].AlertNote = "Duración modificada: el estándar para esta fase es de 2 semanas."
	executing, err := repo.Audit().Create(ctx, &model.AuditEntity{
		Name:          "Atlantida (Urbanización)",
		ResponsibleID: "p2",
		Status:        types.AuditStatusExecution,
		Progress:      50,
		Phases:        phases,
		Tasks: []*model.Task{
			{Title: "Revisión de Licencias de Obra", Status: types.TaskStatusCompleted},
			{Title: "Cotejo de Planos Maestros", Status: types.TaskStatusInProgress},
			{Title: "Entrevistas de campo", Status: types.TaskStatusPending},
			{Title: "Validación de presupuestos", Status: types.TaskStatusPending},
		},
	})
	gt.NoError(t, err).Required()

	highRisk := &model.RiskControl{
		AuditID: executing.ID, Impact: 5, Probability: 4, ControlEffectiveness: 2,
	}
	highRisk.Rescore()
	_, err = repo.Risk().Create(ctx, highRisk)
	gt.NoError(t, err).Required()

	mediumRisk := &model.RiskControl{
		AuditID: completed.ID, Impact: 4, Probability: 3, ControlEffectiveness: 3,
	}
	mediumRisk.Rescore()
	_, err = repo.Risk().Create(ctx, mediumRisk)
	gt.NoError(t, err).Required()

	for _, c := range []*model.CLACriterion{
		{AuditID: completed.ID, Criterion: "C-01", Complies: types.ComplianceYes},
		{AuditID: executing.ID, Criterion: "C-02", Complies: types.ComplianceNo},
	} {
		_, err := repo.Criterion().Create(ctx, c)
		gt.NoError(t, err).Required()
	}

	return repo
}

func TestDashboardOverview(t *testing.T) {
	ctx := context.Background()
	repo := seedDashboardData(t)
	uc := usecase.NewDashboardUseCase(repo)

	t.Run("master sees the full program", func(t *testing.T) {
		ov, err := uc.Overview(ctx, masterViewer)
		gt.NoError(t, err).Required()

		gt.Value(t, ov.TotalEntities).Equal(2)
		gt.Value(t, ov.InExecution).Equal(1)
		gt.Value(t, ov.Completed).Equal(1)
		gt.Value(t, ov.AverageProgress).Equal(75)
		gt.Value(t, ov.HighRisks).Equal(1)

		gt.Value(t, ov.RiskDistribution["Alto"]).Equal(1)
		gt.Value(t, ov.RiskDistribution["Medio"]).Equal(1)
		gt.Value(t, ov.ComplianceSummary["Sí"]).Equal(1)
		gt.Value(t, ov.ComplianceSummary["No"]).Equal(1)

		gt.Array(t, ov.PlanningAlerts).Length(1)
		gt.Value(t, ov.PlanningAlerts[0].EntityName).Equal("Atlantida (Urbanización)")
		gt.Value(t, ov.PlanningAlerts[0].PhaseName).Equal("Fase II - Levantamiento de información")

		gt.Array(t, ov.TaskStats).Length(2)
		for _, stats := range ov.TaskStats {
			if stats.EntityName != "Atlantida (Urbanización)" {
				continue
			}
			gt.Value(t, stats.Total).Equal(4)
			gt.Value(t, stats.Completed).Equal(1)
			gt.Value(t, stats.InProgress).Equal(1)
			gt.Value(t, stats.Pending).Equal(2)
			gt.Value(t, stats.Progress).Equal(25)
		}
	})

	t.Run("auditor counts only assigned entities", func(t *testing.T) {
		ov, err := uc.Overview(ctx, access.Viewer{Role: types.RoleAuditor, PersonID: "p1"})
		gt.NoError(t, err).Required()

		gt.Value(t, ov.TotalEntities).Equal(1)
		gt.Value(t, ov.Completed).Equal(1)
		gt.Value(t, ov.InExecution).Equal(0)
		gt.Value(t, ov.HighRisks).Equal(0) // the high risk belongs to the other entity
		gt.Value(t, ov.ComplianceSummary["No"]).Equal(0)
	})

	t.Run("empty program yields zeroes", func(t *testing.T) {
		empty := usecase.NewDashboardUseCase(memory.New())
		ov, err := empty.Overview(ctx, masterViewer)
		gt.NoError(t, err).Required()

		gt.Value(t, ov.TotalEntities).Equal(0)
		gt.Value(t, ov.AverageProgress).Equal(0)
		gt.Array(t, ov.TaskStats).Length(0)
		gt.Array(t, ov.PlanningAlerts).Length(0)
	})
}
