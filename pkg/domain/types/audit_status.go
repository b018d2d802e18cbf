package types

import "fmt"

// AuditStatus represents the lifecycle stage of an audit entity or phase
type AuditStatus string

const (
	AuditStatusPlanning  AuditStatus = "Planning"
	AuditStatusExecution AuditStatus = "Execution"
	AuditStatusReporting AuditStatus = "Reporting"
	AuditStatusCompleted AuditStatus = "Completed"
)

// AllAuditStatuses returns all valid audit statuses
func AllAuditStatuses() []AuditStatus {
	return []AuditStatus{
		AuditStatusPlanning,
		AuditStatusExecution,
		AuditStatusReporting,
		AuditStatusCompleted,
	}
}

// IsValid checks if the audit status is valid
func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusPlanning,
		AuditStatusExecution,
		AuditStatusReporting,
		AuditStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as AuditStatusPlanning.
func (s AuditStatus) Normalize() AuditStatus {
	if s == "" {
		return AuditStatusPlanning
	}
	return s
}

// Label returns the Spanish display label for the status
func (s AuditStatus) Label() string {
	switch s {
	case AuditStatusCompleted:
		return "Completado"
	case AuditStatusExecution:
		return "En Curso"
	case AuditStatusReporting:
		return "Informe"
	default:
		return "Pendiente"
	}
}

// String returns the string representation of the audit status
func (s AuditStatus) String() string {
	return string(s)
}

// ParseAuditStatus parses a string into an AuditStatus
func ParseAuditStatus(s string) (AuditStatus, error) {
	status := AuditStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid audit status: %s", s)
	}
	return status, nil
}
