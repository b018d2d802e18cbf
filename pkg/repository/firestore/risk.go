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

type riskDocument struct {
	ID                   string  `firestore:"id"`
	AuditID              string  `firestore:"audit_id"`
	Process              string  `firestore:"process"`
	Area                 string  `firestore:"area"`
	RiskDescription      string  `firestore:"risk_description"`
	Impact               int     `firestore:"impact"`
	Probability          int     `firestore:"probability"`
	InherentRisk         int     `firestore:"inherent_risk"`
	ExistingControls     string  `firestore:"existing_controls"`
	ControlEffectiveness int     `firestore:"control_effectiveness"`
	ResidualRisk         float64 `firestore:"residual_risk"`
	TrafficLightLevel    string  `firestore:"traffic_light_level"`
	Status               string  `firestore:"status"`
	Responsible          string  `firestore:"responsible"`
	ImplementationDate   string  `firestore:"implementation_date"`
	Recommendation       string  `firestore:"recommendation"`
}

func riskToDocument(r *model.RiskControl) *riskDocument {
	return &riskDocument{
		ID:                   r.ID.String(),
		AuditID:              r.AuditID.String(),
		Process:              r.Process,
		Area:                 r.Area,
		RiskDescription:      r.RiskDescription,
		Impact:               r.Impact,
		Probability:          r.Probability,
		InherentRisk:         r.InherentRisk,
		ExistingControls:     r.ExistingControls,
		ControlEffectiveness: r.ControlEffectiveness,
		ResidualRisk:         r.ResidualRisk,
		TrafficLightLevel:    r.TrafficLightLevel.String(),
		Status:               r.Status.Normalize().String(),
		Responsible:          r.Responsible,
		ImplementationDate:   r.ImplementationDate,
		Recommendation:       r.Recommendation,
	}
}

func riskFromDocument(doc *riskDocument) *model.RiskControl {
	return &model.RiskControl{
		ID:                   types.RiskID(doc.ID),
		AuditID:              types.AuditID(doc.AuditID),
		Process:              doc.Process,
		Area:                 doc.Area,
		RiskDescription:      doc.RiskDescription,
		Impact:               doc.Impact,
		Probability:          doc.Probability,
		InherentRisk:         doc.InherentRisk,
		ExistingControls:     doc.ExistingControls,
		ControlEffectiveness: doc.ControlEffectiveness,
		ResidualRisk:         doc.ResidualRisk,
		TrafficLightLevel:    types.RiskLevel(doc.TrafficLightLevel),
		Status:               types.RiskStatus(doc.Status).Normalize(),
		Responsible:          doc.Responsible,
		ImplementationDate:   doc.ImplementationDate,
		Recommendation:       doc.Recommendation,
	}
}

type riskRepository struct {
	client           *firestore.Client
	collectionPrefix string
	audits           *auditRepository
}

func newRiskRepository(client *firestore.Client, audits *auditRepository) *riskRepository {
	return &riskRepository{client: client, audits: audits}
}

func (r *riskRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_risk_controls"
	}
	return "risk_controls"
}

func (r *riskRepository) join(ctx context.Context, risk *model.RiskControl) *model.RiskControl {
	risk.EntityName, risk.AuditScope = r.audits.lookup(ctx, risk.AuditID)
	return risk
}

func (r *riskRepository) Create(ctx context.Context, risk *model.RiskControl) (*model.RiskControl, error) {
	created := *risk
	if created.ID == "" {
		created.ID = types.NewRiskID()
	}

	doc := riskToDocument(&created)
	docRef := r.client.Collection(r.collection()).Doc(doc.ID)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create risk", goerr.V("id", doc.ID))
	}

	return r.join(ctx, riskFromDocument(doc)), nil
}

func (r *riskRepository) Get(ctx context.Context, id types.RiskID) (*model.RiskControl, error) {
	docRef := r.client.Collection(r.collection()).Doc(id.String())
	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	var doc riskDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal risk", goerr.V("id", id))
	}

	return r.join(ctx, riskFromDocument(&doc)), nil
}

func (r *riskRepository) List(ctx context.Context) ([]*model.RiskControl, error) {
	// Resolve entity names once for the whole listing instead of per row
	entities, err := r.audits.List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities for join")
	}
	names := make(map[string]*model.AuditEntity, len(entities))
	for _, e := range entities {
		names[e.ID.String()] = e
	}

	iter := r.client.Collection(r.collection()).Documents(ctx)
	defer iter.Stop()

	var risks []*model.RiskControl
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate risks")
		}

		var doc riskDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal risk")
		}

		risk := riskFromDocument(&doc)
		if entity, ok := names[doc.AuditID]; ok {
			risk.EntityName = entity.Name
			risk.AuditScope = entity.Scope
		}
		risks = append(risks, risk)
	}

	return risks, nil
}

func (r *riskRepository) Update(ctx context.Context, risk *model.RiskControl) (*model.RiskControl, error) {
	docRef := r.client.Collection(r.collection()).Doc(risk.ID.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", risk.ID))
		}
		return nil, goerr.Wrap(err, "failed to get risk", goerr.V("id", risk.ID))
	}

	doc := riskToDocument(risk)
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to update risk", goerr.V("id", risk.ID))
	}

	return r.join(ctx, riskFromDocument(doc)), nil
}

func (r *riskRepository) Delete(ctx context.Context, id types.RiskID) error {
	docRef := r.client.Collection(r.collection()).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(ErrNotFound, "risk not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get risk", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete risk", goerr.V("id", id))
	}

	return nil
}
