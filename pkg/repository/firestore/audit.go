package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type phaseDocument struct {
	ID            string   `firestore:"id"`
	Name          string   `firestore:"name"`
	Objectives    []string `firestore:"objectives"`
	StartWeek     int      `firestore:"start_week"`
	DurationWeeks int      `firestore:"duration_weeks"`
	Status        string   `firestore:"status"`
	AlertNote     string   `firestore:"alert_note"`
}

type taskDocument struct {
	ID         string `firestore:"id"`
	Title      string `firestore:"title"`
	Status     string `firestore:"status"`
	AssignedTo string `firestore:"assigned_to"`
}

// auditDocument embeds phases and tasks so reads arrive pre-populated, the
// join behavior the dashboard expects.
type auditDocument struct {
	ID            string          `firestore:"id"`
	Name          string          `firestore:"name"`
	ResponsibleID string          `firestore:"responsible_id"`
	Scope         string          `firestore:"scope"`
	Status        string          `firestore:"status"`
	Progress      int             `firestore:"progress"`
	StartDate     string          `firestore:"start_date"`
	LastUpdated   time.Time       `firestore:"last_updated"`
	Phases        []phaseDocument `firestore:"phases"`
	Tasks         []taskDocument  `firestore:"tasks"`
}

func phaseToDocument(p *model.Phase) phaseDocument {
	return phaseDocument{
		ID:            p.ID.String(),
		Name:          p.Name,
		Objectives:    p.Objectives,
		StartWeek:     p.StartWeek,
		DurationWeeks: p.DurationWeeks,
		Status:        p.Status.String(),
		AlertNote:     p.AlertNote,
	}
}

func phaseFromDocument(doc phaseDocument) *model.Phase {
	return &model.Phase{
		ID:            types.PhaseID(doc.ID),
		Name:          doc.Name,
		Objectives:    doc.Objectives,
		StartWeek:     doc.StartWeek,
		DurationWeeks: doc.DurationWeeks,
		Status:        types.AuditStatus(doc.Status).Normalize(),
		AlertNote:     doc.AlertNote,
	}
}

func taskToDocument(t *model.Task) taskDocument {
	return taskDocument{
		ID:         t.ID.String(),
		Title:      t.Title,
		Status:     t.Status.String(),
		AssignedTo: t.AssignedTo.String(),
	}
}

func taskFromDocument(doc taskDocument) *model.Task {
	return &model.Task{
		ID:         types.TaskID(doc.ID),
		Title:      doc.Title,
		Status:     types.TaskStatus(doc.Status),
		AssignedTo: types.PersonID(doc.AssignedTo),
	}
}

func auditToDocument(e *model.AuditEntity) *auditDocument {
	doc := &auditDocument{
		ID:            e.ID.String(),
		Name:          e.Name,
		ResponsibleID: e.ResponsibleID.String(),
		Scope:         e.Scope,
		Status:        e.Status.Normalize().String(),
		Progress:      e.Progress,
		StartDate:     e.StartDate,
		LastUpdated:   e.LastUpdated,
	}
	for _, p := range e.Phases {
		doc.Phases = append(doc.Phases, phaseToDocument(p))
	}
	for _, t := range e.Tasks {
		doc.Tasks = append(doc.Tasks, taskToDocument(t))
	}
	return doc
}

func auditFromDocument(doc *auditDocument) *model.AuditEntity {
	entity := &model.AuditEntity{
		ID:            types.AuditID(doc.ID),
		Name:          doc.Name,
		ResponsibleID: types.PersonID(doc.ResponsibleID),
		Scope:         doc.Scope,
		Status:        types.AuditStatus(doc.Status).Normalize(),
		Progress:      doc.Progress,
		StartDate:     doc.StartDate,
		LastUpdated:   doc.LastUpdated,
	}
	for _, p := range doc.Phases {
		entity.Phases = append(entity.Phases, phaseFromDocument(p))
	}
	for _, t := range doc.Tasks {
		entity.Tasks = append(entity.Tasks, taskFromDocument(t))
	}
	return entity
}

type auditRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{client: client}
}

func (r *auditRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_audit_entities"
	}
	return "audit_entities"
}

func (r *auditRepository) Create(ctx context.Context, entity *model.AuditEntity) (*model.AuditEntity, error) {
	created := *entity
	if created.ID == "" {
		created.ID = types.NewAuditID()
	}
	for _, p := range created.Phases {
		if p.ID == "" {
			p.ID = types.NewPhaseID()
		}
	}
	for _, t := range created.Tasks {
		if t.ID == "" {
			t.ID = types.NewTaskID()
		}
	}
	created.LastUpdated = time.Now().UTC()

	doc := auditToDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create audit entity", goerr.V("id", doc.ID))
	}

	return auditFromDocument(doc), nil
}

func (r *auditRepository) Get(ctx context.Context, id types.AuditID) (*model.AuditEntity, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "audit entity not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get audit entity", goerr.V("id", id))
	}

	var doc auditDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal audit entity", goerr.V("id", id))
	}

	return auditFromDocument(&doc), nil
}

func (r *auditRepository) List(ctx context.Context) ([]*model.AuditEntity, error) {
	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var entities []*model.AuditEntity
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate audit entities")
		}

		var doc auditDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal audit entity")
		}

		entities = append(entities, auditFromDocument(&doc))
	}

	return entities, nil
}

func (r *auditRepository) Update(ctx context.Context, entity *model.AuditEntity) (*model.AuditEntity, error) {
	existing, err := r.Get(ctx, entity.ID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = entity.Name
	updated.ResponsibleID = entity.ResponsibleID
	updated.Scope = entity.Scope
	updated.Status = entity.Status.Normalize()
	updated.Progress = entity.Progress
	updated.StartDate = entity.StartDate
	updated.LastUpdated = time.Now().UTC()

	doc := auditToDocument(&updated)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit entity", goerr.V("id", doc.ID))
	}

	return auditFromDocument(doc), nil
}

func (r *auditRepository) UpdatePhase(ctx context.Context, auditID types.AuditID, phase *model.Phase) (*model.Phase, error) {
	entity, err := r.Get(ctx, auditID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, p := range entity.Phases {
		if p.ID == phase.ID {
			entity.Phases[i] = phase
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, goerr.Wrap(ErrNotFound, "phase not found",
			goerr.V("auditID", auditID), goerr.V("phaseID", phase.ID))
	}
	entity.LastUpdated = time.Now().UTC()

	doc := auditToDocument(entity)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update phase",
			goerr.V("auditID", auditID), goerr.V("phaseID", phase.ID))
	}

	return phase, nil
}

func (r *auditRepository) UpdateTask(ctx context.Context, auditID types.AuditID, task *model.Task) (*model.Task, error) {
	entity, err := r.Get(ctx, auditID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i, t := range entity.Tasks {
		if t.ID == task.ID {
			entity.Tasks[i] = task
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, goerr.Wrap(ErrNotFound, "task not found",
			goerr.V("auditID", auditID), goerr.V("taskID", task.ID))
	}
	entity.LastUpdated = time.Now().UTC()

	doc := auditToDocument(entity)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update task",
			goerr.V("auditID", auditID), goerr.V("taskID", task.ID))
	}

	return task, nil
}

// lookup resolves name and scope for the entity-name join onto risks and
// criteria. A missing entity yields empty strings, not an error.
func (r *auditRepository) lookup(ctx context.Context, id types.AuditID) (name, scope string) {
	entity, err := r.Get(ctx, id)
	if err != nil {
		return "", ""
	}
	return entity.Name, entity.Scope
}
