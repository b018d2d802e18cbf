package interfaces

import (
	"context"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// AuditRepository defines data access for audit entities. Phases and tasks
// are owned by their entity and arrive populated on reads.
type AuditRepository interface {
	// Create creates a new audit entity with its phases and tasks
	Create(ctx context.Context, entity *model.AuditEntity) (*model.AuditEntity, error)

	// Get retrieves an audit entity by ID, phases and tasks populated
	Get(ctx context.Context, id types.AuditID) (*model.AuditEntity, error)

	// List retrieves all audit entities, phases and tasks populated
	List(ctx context.Context) ([]*model.AuditEntity, error)

	// Update updates the entity's own fields; phases and tasks are not
	// touched by this call
	Update(ctx context.Context, entity *model.AuditEntity) (*model.AuditEntity, error)

	// UpdatePhase replaces one phase of the entity
	UpdatePhase(ctx context.Context, auditID types.AuditID, phase *model.Phase) (*model.Phase, error)

	// UpdateTask replaces one task of the entity
	UpdateTask(ctx context.Context, auditID types.AuditID, task *model.Task) (*model.Task, error)
}
