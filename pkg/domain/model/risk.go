package model

import (
	"math"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// RiskControl is one row of the risk/control matrix. InherentRisk,
// ResidualRisk and TrafficLightLevel are derived from Impact, Probability
// and ControlEffectiveness and must never be stored stale relative to them;
// every write path recomputes them together via Rescore.
type RiskControl struct {
	ID                   types.RiskID     `json:"id"`
	AuditID              types.AuditID    `json:"audit_id"`
	EntityName           string           `json:"entity_name,omitempty"`
	AuditScope           string           `json:"audit_scope,omitempty"`
	Process              string           `json:"process"`
	Area                 string           `json:"area"`
	RiskDescription      string           `json:"risk_description"`
	Impact               int              `json:"impact"`
	Probability          int              `json:"probability"`
	InherentRisk         int              `json:"inherent_risk"`
	ExistingControls     string           `json:"existing_controls"`
	ControlEffectiveness int              `json:"control_effectiveness"`
	ResidualRisk         float64          `json:"residual_risk"`
	TrafficLightLevel    types.RiskLevel  `json:"traffic_light_level"`
	Status               types.RiskStatus `json:"status"`
	Responsible          string           `json:"responsible"`
	ImplementationDate   string           `json:"implementation_date"`
	Recommendation       string           `json:"recommendation"`
}

// Rescore recomputes the derived scoring fields in place:
//
//	inherent_risk  = impact × probability
//	residual_risk  = inherent_risk / control_effectiveness, rounded half-up
//	                 to 2 decimals, effectiveness treated as 1 when < 1
//	traffic light  = Alto (>=15), Medio (>=8), Bajo otherwise
//
// Inputs are expected in 1-5 by the input surface; the method does not
// reject out-of-range values. Calling it again with unchanged inputs yields
// the identical record.
func (r *RiskControl) Rescore() {
	r.InherentRisk = r.Impact * r.Probability
	r.TrafficLightLevel = types.ClassifyInherentRisk(r.InherentRisk)

	effectiveness := r.ControlEffectiveness
	if effectiveness < 1 {
		effectiveness = 1
	}
	r.ResidualRisk = round2(float64(r.InherentRisk) / float64(effectiveness))
}

// round2 rounds half-up to 2 decimal places. Scores are non-negative, so
// math.Round's half-away-from-zero matches half-up here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
