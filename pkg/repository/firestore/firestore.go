package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Firestore is the production repository backed by Cloud Firestore.
type Firestore struct {
	client     *firestore.Client
	audit      *auditRepository
	person     *personRepository
	risk       *riskRepository
	criterion  *criterionRepository
	planner    *plannerRepository
	area       *areaRepository
	credential *credentialRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used to isolate test runs.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.audit.collectionPrefix = prefix
		f.person.collectionPrefix = prefix
		f.risk.collectionPrefix = prefix
		f.criterion.collectionPrefix = prefix
		f.planner.collectionPrefix = prefix
		f.area.collectionPrefix = prefix
		f.credential.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	auditRepo := newAuditRepository(client)

	f := &Firestore{
		client:     client,
		audit:      auditRepo,
		person:     newPersonRepository(client),
		risk:       newRiskRepository(client, auditRepo),
		criterion:  newCriterionRepository(client, auditRepo),
		planner:    newPlannerRepository(client),
		area:       newAreaRepository(client),
		credential: newCredentialRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Audit() interfaces.AuditRepository {
	return f.audit
}

func (f *Firestore) Person() interfaces.PersonRepository {
	return f.person
}

func (f *Firestore) Risk() interfaces.RiskRepository {
	return f.risk
}

func (f *Firestore) Criterion() interfaces.CriterionRepository {
	return f.criterion
}

func (f *Firestore) Planner() interfaces.PlannerRepository {
	return f.planner
}

func (f *Firestore) Area() interfaces.AreaRepository {
	return f.area
}

func (f *Firestore) Credential() interfaces.CredentialRepository {
	return f.credential
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
