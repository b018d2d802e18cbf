package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func runAuditRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns IDs and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:      "Islacana Investments",
			Scope:     "Auditoría Financiera Anual 2024",
			StartDate: "2026-02-16",
			Phases:    model.StandardPhases(),
			Tasks: []*model.Task{
				{Title: "Cierre de papeles de trabajo", Status: types.TaskStatusPending},
			},
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.Name).Equal("Islacana Investments")
		gt.Bool(t, created.LastUpdated.IsZero()).False()
		gt.Array(t, created.Phases).Length(5)
		gt.Array(t, created.Tasks).Length(1)
		gt.String(t, string(created.Tasks[0].ID)).NotEqual("")
	})

	t.Run("Create normalizes empty status to Planning", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Sin estado"})
		gt.NoError(t, err).Required()
		gt.Value(t, created.Status).Equal(types.AuditStatusPlanning)
	})

	t.Run("Get returns the stored entity", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:   "Atlantida (River Island)",
			Status: types.AuditStatusExecution,
			Phases: model.StandardPhases(),
		})
		gt.NoError(t, err).Required()

		got, err := repo.Audit().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Atlantida (River Island)")
		gt.Value(t, got.Status).Equal(types.AuditStatusExecution)
		gt.Array(t, got.Phases).Length(5)
	})

	t.Run("Get unknown ID is ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Audit().Get(ctx, types.NewAuditID())
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update replaces entity fields, keeps phases and tasks", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:   "Noval Cortecito (Oceana)",
			Phases: model.StandardPhases(),
			Tasks:  []*model.Task{{Title: "Reunión de apertura", Status: types.TaskStatusPending}},
		})
		gt.NoError(t, err).Required()

		created.Status = types.AuditStatusExecution
		created.Progress = 30
		updated, err := repo.Audit().Update(ctx, created)
		gt.NoError(t, err).Required()

		gt.Value(t, updated.Status).Equal(types.AuditStatusExecution)
		gt.Value(t, updated.Progress).Equal(30)
		gt.Array(t, updated.Phases).Length(5)
		gt.Array(t, updated.Tasks).Length(1)
	})

	t.Run("UpdatePhase replaces one phase in place", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:   "Atlantida (Urbanización)",
			Phases: model.StandardPhases(),
		})
		gt.NoError(t, err).Required()

		phase := *created.Phases[1]
		phase.DurationWeeks = 4
		phase.AlertNote = "Duración modificada"

		updated, err := repo.Audit().UpdatePhase(ctx, created.ID, &phase)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.DurationWeeks).Equal(4)

		got, err := repo.Audit().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Phases[1].DurationWeeks).Equal(4)
		gt.Value(t, got.Phases[1].AlertNote).Equal("Duración modificada")
		gt.Value(t, got.Phases[0].DurationWeeks).Equal(2)
	})

	t.Run("UpdatePhase unknown phase is ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:   "Sin fases",
			Phases: model.StandardPhases(),
		})
		gt.NoError(t, err).Required()

		_, err = repo.Audit().UpdatePhase(ctx, created.ID, &model.Phase{ID: types.NewPhaseID(), DurationWeeks: 1})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateTask replaces one task in place", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name: "Con tareas",
			Tasks: []*model.Task{
				{Title: "Revisión de Licencias de Obra", Status: types.TaskStatusPending},
				{Title: "Cotejo de Planos Maestros", Status: types.TaskStatusPending},
			},
		})
		gt.NoError(t, err).Required()

		task := *created.Tasks[0]
		task.Status = types.TaskStatusCompleted

		updated, err := repo.Audit().UpdateTask(ctx, created.ID, &task)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.TaskStatusCompleted)

		got, err := repo.Audit().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Tasks[0].Status).Equal(types.TaskStatusCompleted)
		gt.Value(t, got.Tasks[1].Status).Equal(types.TaskStatusPending)
	})

	t.Run("List returns all entities", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"Uno", "Dos", "Tres"} {
			_, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: name})
			gt.NoError(t, err).Required()
		}

		entities, err := repo.Audit().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, entities).Length(3)
	})
}

func TestMemoryAuditRepository(t *testing.T) {
	runAuditRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreAuditRepository(t *testing.T) {
	runAuditRepositoryTest(t, newFirestoreRepository)
}
