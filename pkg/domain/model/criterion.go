package model

import "github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"

// CLACriterion is a compliance checklist item evaluated per entity/area.
// EntityName is resolved from the owning audit entity by the repository.
type CLACriterion struct {
	ID          types.CriterionID `json:"id"`
	AuditID     types.AuditID     `json:"audit_id"`
	EntityName  string            `json:"entity_name,omitempty"`
	Area        string            `json:"area"`
	Criterion   string            `json:"criterion"`
	Description string            `json:"description"`
	Source      string            `json:"source"`
	Complies    types.Compliance  `json:"complies"`
}
