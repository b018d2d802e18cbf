package model_test

import (
	"testing"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestRescore(t *testing.T) {
	cases := []struct {
		name          string
		impact        int
		probability   int
		effectiveness int
		inherent      int
		residual      float64
		level         types.RiskLevel
	}{
		{
			name:   "payroll risk scores high",
			impact: 5, probability: 4, effectiveness: 2,
			inherent: 20, residual: 10.00, level: types.RiskLevelHigh,
		},
		{
			name:   "duplicate payment risk scores medium",
			impact: 4, probability: 3, effectiveness: 3,
			inherent: 12, residual: 4.00, level: types.RiskLevelMedium,
		},
		{
			name:   "minor risk scores low",
			impact: 2, probability: 3, effectiveness: 4,
			inherent: 6, residual: 1.50, level: types.RiskLevelLow,
		},
		{
			name:   "boundary 15 is high",
			impact: 5, probability: 3, effectiveness: 1,
			inherent: 15, residual: 15.00, level: types.RiskLevelHigh,
		},
		{
			name:   "boundary 14 is medium",
			impact: 7, probability: 2, effectiveness: 1,
			inherent: 14, residual: 14.00, level: types.RiskLevelMedium,
		},
		{
			name:   "boundary 8 is medium",
			impact: 4, probability: 2, effectiveness: 1,
			inherent: 8, residual: 8.00, level: types.RiskLevelMedium,
		},
		{
			name:   "boundary 7 is low",
			impact: 7, probability: 1, effectiveness: 1,
			inherent: 7, residual: 7.00, level: types.RiskLevelLow,
		},
		{
			name:   "zero effectiveness treated as 1",
			impact: 4, probability: 4, effectiveness: 0,
			inherent: 16, residual: 16.00, level: types.RiskLevelHigh,
		},
		{
			name:   "residual rounds half up to 2 decimals",
			impact: 4, probability: 4, effectiveness: 3,
			inherent: 16, residual: 5.33, level: types.RiskLevelHigh,
		},
		{
			name:   "residual 20 over 3 rounds up",
			impact: 5, probability: 4, effectiveness: 3,
			inherent: 20, residual: 6.67, level: types.RiskLevelHigh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			risk := &model.RiskControl{
				Impact:               tc.impact,
				Probability:          tc.probability,
				ControlEffectiveness: tc.effectiveness,
			}
			risk.Rescore()

			gt.Value(t, risk.InherentRisk).Equal(tc.inherent)
			gt.Value(t, risk.ResidualRisk).Equal(tc.residual)
			gt.Value(t, risk.TrafficLightLevel).Equal(tc.level)
		})
	}
}

func TestRescoreIdempotent(t *testing.T) {
	risk := &model.RiskControl{
		Impact:               5,
		Probability:          4,
		ControlEffectiveness: 2,
	}
	risk.Rescore()
	first := *risk

	risk.Rescore()
	gt.Value(t, *risk).Equal(first)
}

func TestRescoreOverwritesStaleDerivedFields(t *testing.T) {
	// Derived fields supplied by a client must never survive a write path.
	risk := &model.RiskControl{
		Impact:               2,
		Probability:          2,
		ControlEffectiveness: 4,
		InherentRisk:         99,
		ResidualRisk:         99,
		TrafficLightLevel:    types.RiskLevelCritical,
	}
	risk.Rescore()

	gt.Value(t, risk.InherentRisk).Equal(4)
	gt.Value(t, risk.ResidualRisk).Equal(1.00)
	gt.Value(t, risk.TrafficLightLevel).Equal(types.RiskLevelLow)
}
