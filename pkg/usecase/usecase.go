package usecase

import (
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/m-mizutani/gollem"
)

type UseCases struct {
	repo        interfaces.Repository
	masterEmail string
	tokenSecret []byte
	llmClient   gollem.LLMClient

	Auth      *AuthUseCase
	Audit     *AuditUseCase
	Risk      *RiskUseCase
	Criterion *CriterionUseCase
	People    *PeopleUseCase
	Planner   *PlannerUseCase
	Report    *ReportUseCase
	Dashboard *DashboardUseCase
	Schedule  *ScheduleUseCase
}

type Option func(*UseCases)

// WithMasterEmail overrides the built-in super-admin address
func WithMasterEmail(email string) Option {
	return func(uc *UseCases) {
		if email != "" {
			uc.masterEmail = email
		}
	}
}

// WithSessionSecret sets the signing key for session tokens. Without it a
// random key is generated at startup.
func WithSessionSecret(secret []byte) Option {
	return func(uc *UseCases) {
		uc.tokenSecret = secret
	}
}

// WithLLMClient enables the AI report generator. A nil client leaves report
// generation in degraded mode.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:        repo,
		masterEmail: access.DefaultMasterEmail,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Auth = NewAuthUseCase(repo, uc.masterEmail, WithTokenSecret(uc.tokenSecret))
	uc.Audit = NewAuditUseCase(repo)
	uc.Risk = NewRiskUseCase(repo)
	uc.Criterion = NewCriterionUseCase(repo)
	uc.People = NewPeopleUseCase(repo)
	uc.Planner = NewPlannerUseCase(repo)
	uc.Report = NewReportUseCase(repo, uc.llmClient)
	uc.Dashboard = NewDashboardUseCase(repo)
	uc.Schedule = NewScheduleUseCase(repo)

	return uc
}
