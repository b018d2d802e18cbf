package firestore

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type plannerDocument struct {
	ID    string `firestore:"id"`
	Scope string `firestore:"scope"`
	Task  string `firestore:"task"`
	Phase string `firestore:"phase"`
}

func plannerToDocument(e *model.TaskPlannerEntry) *plannerDocument {
	return &plannerDocument{
		ID:    e.ID.String(),
		Scope: e.Scope,
		Task:  e.Task,
		Phase: e.Phase,
	}
}

func plannerFromDocument(doc *plannerDocument) *model.TaskPlannerEntry {
	return &model.TaskPlannerEntry{
		ID:    types.EntryID(doc.ID),
		Scope: doc.Scope,
		Task:  doc.Task,
		Phase: doc.Phase,
	}
}

type plannerRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newPlannerRepository(client *firestore.Client) *plannerRepository {
	return &plannerRepository{client: client}
}

func (r *plannerRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_planner_entries"
	}
	return "planner_entries"
}

func (r *plannerRepository) Create(ctx context.Context, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error) {
	created := *entry
	if created.ID == "" {
		created.ID = types.NewEntryID()
	}

	doc := plannerToDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create planner entry", goerr.V("id", doc.ID))
	}

	return plannerFromDocument(doc), nil
}

func (r *plannerRepository) List(ctx context.Context) ([]*model.TaskPlannerEntry, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var entries []*model.TaskPlannerEntry
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate planner entries")
		}

		var doc plannerDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal planner entry")
		}
		entries = append(entries, plannerFromDocument(&doc))
	}

	return entries, nil
}

func (r *plannerRepository) Update(ctx context.Context, entry *model.TaskPlannerEntry) (*model.TaskPlannerEntry, error) {
	docRef := r.client.Collection(r.collection()).Doc(entry.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "planner entry not found", goerr.V("id", entry.ID))
		}
		return nil, goerr.Wrap(err, "failed to get planner entry", goerr.V("id", entry.ID))
	}

	doc := plannerToDocument(entry)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update planner entry", goerr.V("id", entry.ID))
	}

	return plannerFromDocument(doc), nil
}

func (r *plannerRepository) Delete(ctx context.Context, id types.EntryID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "planner entry not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get planner entry", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete planner entry", goerr.V("id", id))
	}

	return nil
}

type areaDocument struct {
	Name string `firestore:"name"`
}

type areaRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAreaRepository(client *firestore.Client) *areaRepository {
	return &areaRepository{client: client}
}

func (r *areaRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_areas"
	}
	return "areas"
}

// Add is idempotent: the area name doubles as the document ID, so a
// repeated Add overwrites an identical document.
func (r *areaRepository) Add(ctx context.Context, name string) error {
	docRef := r.client.Collection(r.collection()).Doc(name)
	if _, err := docRef.Set(ctx, &areaDocument{Name: name}); err != nil {
		return goerr.Wrap(err, "failed to add area", goerr.V("name", name))
	}
	return nil
}

func (r *areaRepository) List(ctx context.Context) ([]string, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var areas []string
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate areas")
		}

		var doc areaDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal area")
		}
		areas = append(areas, doc.Name)
	}

	sort.Strings(areas)

	return areas, nil
}
