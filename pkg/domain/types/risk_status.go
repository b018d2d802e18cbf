package types

import "fmt"

// RiskStatus represents the remediation status of a risk/control row
type RiskStatus string

const (
	RiskStatusCompleted  RiskStatus = "Completado"
	RiskStatusInProgress RiskStatus = "En curso"
	RiskStatusPending    RiskStatus = "Pendiente"
)

// AllRiskStatuses returns all valid risk statuses
func AllRiskStatuses() []RiskStatus {
	return []RiskStatus{
		RiskStatusCompleted,
		RiskStatusInProgress,
		RiskStatusPending,
	}
}

// IsValid checks if the risk status is valid
func (s RiskStatus) IsValid() bool {
	switch s {
	case RiskStatusCompleted,
		RiskStatusInProgress,
		RiskStatusPending:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as RiskStatusPending.
func (s RiskStatus) Normalize() RiskStatus {
	if s == "" {
		return RiskStatusPending
	}
	return s
}

// String returns the string representation of the risk status
func (s RiskStatus) String() string {
	return string(s)
}

// ParseRiskStatus parses a string into a RiskStatus
func ParseRiskStatus(s string) (RiskStatus, error) {
	status := RiskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid risk status: %s", s)
	}
	return status, nil
}
