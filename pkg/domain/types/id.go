package types

import "github.com/google/uuid"

// AuditID identifies an audit entity
type AuditID string

// NewAuditID generates a new UUID v4 AuditID
func NewAuditID() AuditID {
	return AuditID(uuid.New().String())
}

// String returns the string representation of the AuditID
func (id AuditID) String() string {
	return string(id)
}

// PersonID identifies a person profile. When the person is provisioned
// through the admin endpoint, the same ID is shared with the auth principal.
type PersonID string

// NewPersonID generates a new UUID v4 PersonID
func NewPersonID() PersonID {
	return PersonID(uuid.New().String())
}

// String returns the string representation of the PersonID
func (id PersonID) String() string {
	return string(id)
}

// PhaseID identifies a phase within an audit entity
type PhaseID string

// NewPhaseID generates a new UUID v4 PhaseID
func NewPhaseID() PhaseID {
	return PhaseID(uuid.New().String())
}

// String returns the string representation of the PhaseID
func (id PhaseID) String() string {
	return string(id)
}

// TaskID identifies a task within an audit entity
type TaskID string

// NewTaskID generates a new UUID v4 TaskID
func NewTaskID() TaskID {
	return TaskID(uuid.New().String())
}

// String returns the string representation of the TaskID
func (id TaskID) String() string {
	return string(id)
}

// RiskID identifies a risk/control row
type RiskID string

// NewRiskID generates a new UUID v4 RiskID
func NewRiskID() RiskID {
	return RiskID(uuid.New().String())
}

// String returns the string representation of the RiskID
func (id RiskID) String() string {
	return string(id)
}

// CriterionID identifies a CLA compliance criterion
type CriterionID string

// NewCriterionID generates a new UUID v4 CriterionID
func NewCriterionID() CriterionID {
	return CriterionID(uuid.New().String())
}

// String returns the string representation of the CriterionID
func (id CriterionID) String() string {
	return string(id)
}

// EntryID identifies a task planner template entry
type EntryID string

// NewEntryID generates a new UUID v4 EntryID
func NewEntryID() EntryID {
	return EntryID(uuid.New().String())
}

// String returns the string representation of the EntryID
func (id EntryID) String() string {
	return string(id)
}
