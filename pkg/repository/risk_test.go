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

func runRiskRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	newEntity := func(t *testing.T, repo interfaces.Repository, name, scope string) *model.AuditEntity {
		t.Helper()
		entity, err := repo.Audit().Create(context.Background(), &model.AuditEntity{Name: name, Scope: scope})
		gt.NoError(t, err).Required()
		return entity
	}

	t.Run("Create joins entity name and scope", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		entity := newEntity(t, repo, "Islacana Investments", "Auditoría Financiera Anual 2024")

		risk := &model.RiskControl{
			AuditID:         entity.ID,
			Process:         "Procure-to-Pay",
			Area:            "Finanzas",
			RiskDescription: "Pagos duplicados a proveedores externos.",
			Impact:          4, Probability: 3, ControlEffectiveness: 3,
		}
		risk.Rescore()

		created, err := repo.Risk().Create(ctx, risk)
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.EntityName).Equal("Islacana Investments")
		gt.Value(t, created.AuditScope).Equal("Auditoría Financiera Anual 2024")
		gt.Value(t, created.InherentRisk).Equal(12)
		gt.Value(t, created.Status).Equal(types.RiskStatusPending)
	})

	t.Run("Get joins against current entity state", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		entity := newEntity(t, repo, "Antes", "Alcance inicial")

		created, err := repo.Risk().Create(ctx, &model.RiskControl{
			AuditID: entity.ID, RiskDescription: "Riesgo de prueba",
			Impact: 2, Probability: 2, ControlEffectiveness: 1,
		})
		gt.NoError(t, err).Required()

		// Rename the entity; the join must reflect it on the next read
		entity.Name = "Después"
		_, err = repo.Audit().Update(ctx, entity)
		gt.NoError(t, err).Required()

		got, err := repo.Risk().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.EntityName).Equal("Después")
	})

	t.Run("List joins every row", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		e1 := newEntity(t, repo, "Entidad A", "Alcance A")
		e2 := newEntity(t, repo, "Entidad B", "Alcance B")

		for _, auditID := range []types.AuditID{e1.ID, e2.ID} {
			_, err := repo.Risk().Create(ctx, &model.RiskControl{
				AuditID: auditID, RiskDescription: "x",
				Impact: 1, Probability: 1, ControlEffectiveness: 1,
			})
			gt.NoError(t, err).Required()
		}

		risks, err := repo.Risk().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(2)
		names := map[string]bool{}
		for _, r := range risks {
			names[r.EntityName] = true
		}
		gt.Bool(t, names["Entidad A"] && names["Entidad B"]).True()
	})

	t.Run("Update replaces the row", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		entity := newEntity(t, repo, "Entidad", "Alcance")

		created, err := repo.Risk().Create(ctx, &model.RiskControl{
			AuditID: entity.ID, RiskDescription: "antes",
			Impact: 2, Probability: 2, ControlEffectiveness: 1,
			Status: types.RiskStatusPending,
		})
		gt.NoError(t, err).Required()

		created.RiskDescription = "después"
		created.Status = types.RiskStatusCompleted
		updated, err := repo.Risk().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.RiskDescription).Equal("después")
		gt.Value(t, updated.Status).Equal(types.RiskStatusCompleted)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		entity := newEntity(t, repo, "Entidad", "Alcance")

		created, err := repo.Risk().Create(ctx, &model.RiskControl{
			AuditID: entity.ID, RiskDescription: "x",
			Impact: 1, Probability: 1, ControlEffectiveness: 1,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Risk().Delete(ctx, created.ID))

		_, err = repo.Risk().Get(ctx, created.ID)
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Update and Delete of unknown IDs are ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Risk().Update(ctx, &model.RiskControl{ID: types.NewRiskID()})
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound on update, got %v", err)
		}

		err = repo.Risk().Delete(ctx, types.NewRiskID())
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Errorf("expected ErrNotFound on delete, got %v", err)
		}
	})
}

func TestMemoryRiskRepository(t *testing.T) {
	runRiskRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreRiskRepository(t *testing.T) {
	runRiskRepositoryTest(t, newFirestoreRepository)
}
