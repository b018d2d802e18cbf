package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type criterionDocument struct {
	ID          string `firestore:"id"`
	AuditID     string `firestore:"audit_id"`
	Area        string `firestore:"area"`
	Criterion   string `firestore:"criterion"`
	Description string `firestore:"description"`
	Source      string `firestore:"source"`
	Complies    string `firestore:"complies"`
}

func criterionToDocument(c *model.CLACriterion) *criterionDocument {
	return &criterionDocument{
		ID:          c.ID.String(),
		AuditID:     c.AuditID.String(),
		Area:        c.Area,
		Criterion:   c.Criterion,
		Description: c.Description,
		Source:      c.Source,
		Complies:    c.Complies.String(),
	}
}

func criterionFromDocument(doc *criterionDocument) *model.CLACriterion {
	return &model.CLACriterion{
		ID:          types.CriterionID(doc.ID),
		AuditID:     types.AuditID(doc.AuditID),
		Area:        doc.Area,
		Criterion:   doc.Criterion,
		Description: doc.Description,
		Source:      doc.Source,
		Complies:    types.Compliance(doc.Complies),
	}
}

type criterionRepository struct {
	client           *firestore.Client
	collectionPrefix string
	audits           *auditRepository
}

func newCriterionRepository(client *firestore.Client, audits *auditRepository) *criterionRepository {
	return &criterionRepository{client: client, audits: audits}
}

func (r *criterionRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_cla_criteria"
	}
	return "cla_criteria"
}

func (r *criterionRepository) join(ctx context.Context, c *model.CLACriterion) *model.CLACriterion {
	c.EntityName, _ = r.audits.lookup(ctx, c.AuditID)
	return c
}

func (r *criterionRepository) Create(ctx context.Context, criterion *model.CLACriterion) (*model.CLACriterion, error) {
	created := *criterion
	if created.ID == "" {
		created.ID = types.NewCriterionID()
	}

	doc := criterionToDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create criterion", goerr.V("id", doc.ID))
	}

	return r.join(ctx, criterionFromDocument(doc)), nil
}

func (r *criterionRepository) Get(ctx context.Context, id types.CriterionID) (*model.CLACriterion, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "criterion not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get criterion", goerr.V("id", id))
	}

	var doc criterionDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal criterion", goerr.V("id", id))
	}

	return r.join(ctx, criterionFromDocument(&doc)), nil
}

func (r *criterionRepository) List(ctx context.Context) ([]*model.CLACriterion, error) {
	entities, err := r.audits.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities for join")
	}
	names := make(map[string]string, len(entities))
	for _, e := range entities {
		names[e.ID.String()] = e.Name
	}

	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var criteria []*model.CLACriterion
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate criteria")
		}

		var doc criterionDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal criterion")
		}

		criterion := criterionFromDocument(&doc)
		criterion.EntityName = names[doc.AuditID]
		criteria = append(criteria, criterion)
	}

	return criteria, nil
}

func (r *criterionRepository) Update(ctx context.Context, criterion *model.CLACriterion) (*model.CLACriterion, error) {
	docRef := r.client.Collection(r.collection()).Doc(criterion.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "criterion not found", goerr.V("id", criterion.ID))
		}
		return nil, goerr.Wrap(err, "failed to get criterion", goerr.V("id", criterion.ID))
	}

	doc := criterionToDocument(criterion)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update criterion", goerr.V("id", criterion.ID))
	}

	return r.join(ctx, criterionFromDocument(doc)), nil
}
