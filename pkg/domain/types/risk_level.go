package types

import "fmt"

// RiskLevel is the traffic light classification derived from inherent risk.
// RiskLevelCritical is accepted when reading stored data but the
// classification rule never produces it.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "Bajo"
	RiskLevelMedium   RiskLevel = "Medio"
	RiskLevelHigh     RiskLevel = "Alto"
	RiskLevelCritical RiskLevel = "Crítico"
)

// Classification thresholds over inherent risk (1-25).
const (
	riskLevelHighMin   = 15
	riskLevelMediumMin = 8
)

// ClassifyInherentRisk maps an inherent risk score to its traffic light level:
// 15-25 Alto, 8-14 Medio, 1-7 Bajo.
func ClassifyInherentRisk(inherentRisk int) RiskLevel {
	switch {
	case inherentRisk >= riskLevelHighMin:
		return RiskLevelHigh
	case inherentRisk >= riskLevelMediumMin:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// AllRiskLevels returns all declared risk levels
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical,
	}
}

// IsValid checks if the risk level is a declared value
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}

// ParseRiskLevel parses a string into a RiskLevel
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid risk level: %s", s)
	}
	return level, nil
}
