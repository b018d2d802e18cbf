package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type plannerRepository struct {
	mu      sync.RWMutex
	entries map[types.EntryID]*model.TaskPlannerEntry
}

func newPlannerRepository() *plannerRepository {
	return &plannerRepository{
		entries: make(map[types.EntryID]*model.TaskPlannerEntry),
	}
}

func (r *plannerRepository) Create(ctx context.Context, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *entry
	if cp.ID == "" {
		cp.ID = types.NewEntryID()
	}

	r.entries[cp.ID] = &cp
	result := cp
	return &result, nil
}

func (r *plannerRepository) List(ctx context.Context) ([]*model.TaskPlannerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.TaskPlannerEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		entries = append(entries, &cp)
	}

	return entries, nil
}

func (r *plannerRepository) Update(ctx context.Context, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.ID]; !exists {
		return nil, goerr.Wrap(ErrNotFound, "planner entry not found", goerr.V("id", entry.ID))
	}

	cp := *entry
	r.entries[cp.ID] = &cp
	result := cp
	return &result, nil
}

func (r *plannerRepository) Delete(ctx context.Context, id types.EntryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; !exists {
		return goerr.Wrap(ErrNotFound, "planner entry not found", goerr.V("id", id))
	}

	delete(r.entries, id)
	return nil
}

type areaRepository struct {
	mu    sync.RWMutex
	names map[string]bool
}

func newAreaRepository() *areaRepository {
	return &areaRepository{
		names: make(map[string]bool),
	}
}

func (r *areaRepository) Add(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.names[name] = true
	return nil
}

func (r *areaRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
