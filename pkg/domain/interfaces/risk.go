package interfaces

import (
	"context"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// RiskRepository defines data access for risk/control rows. Reads resolve
// EntityName and AuditScope from the owning audit entity.
type RiskRepository interface {
	// Create creates a new risk row, assigning an ID when empty
	Create(ctx context.Context, risk *model.RiskControl) (*model.RiskControl, error)

	// Get retrieves a risk row by ID
	Get(ctx context.Context, id types.RiskID) (*model.RiskControl, error)

	// List retrieves all risk rows
	List(ctx context.Context) ([]*model.RiskControl, error)

	// Update updates an existing risk row
	Update(ctx context.Context, risk *model.RiskControl) (*model.RiskControl, error)

	// Delete deletes a risk row by ID
	Delete(ctx context.Context, id types.RiskID) error
}

// CriterionRepository defines data access for CLA criteria. Reads resolve
// EntityName from the owning audit entity.
type CriterionRepository interface {
	// Create creates a new criterion, assigning an ID when empty
	Create(ctx context.Context, criterion *model.CLACriterion) (*model.CLACriterion, error)

	// Get retrieves a criterion by ID
	Get(ctx context.Context, id types.CriterionID) (*model.CLACriterion, error)

	// List retrieves all criteria
	List(ctx context.Context) ([]*model.CLACriterion, error)

	// Update updates an existing criterion
	Update(ctx context.Context, criterion *model.CLACriterion) (*model.CLACriterion, error)
}

// PlannerRepository defines data access for task planner template entries
type PlannerRepository interface {
	// Create creates a new entry, assigning an ID when empty
	Create(ctx context.Context, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error)

	// List retrieves all entries
	List(ctx context.Context) ([]*model.TaskPlannerEntry, error)

	// Update updates an existing entry
	Update(ctx context.Context, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error)

	// Delete deletes an entry by ID
	Delete(ctx context.Context, id types.EntryID) error
}

// AreaRepository stores the open area vocabulary
type AreaRepository interface {
	// Add adds a name to the vocabulary; adding an existing name is a no-op
	Add(ctx context.Context, name string) error

	// List retrieves all area names
	List(ctx context.Context) ([]string, error)
}
