package interfaces

// Repository aggregates the per-collection repositories backed by a single
// store (Firestore in production, in-memory for development and tests).
type Repository interface {
	Audit() AuditRepository
	Person() PersonRepository
	Risk() RiskRepository
	Criterion() CriterionRepository
	Planner() PlannerRepository
	Area() AreaRepository
	Credential() CredentialRepository

	Close() error
}
