package usecase

import (
	"context"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// EntityTaskStats is the per-entity task breakdown shown on the dashboard
type EntityTaskStats struct {
	AuditID    types.AuditID `json:"audit_id"`
	EntityName string        `json:"entity_name"`
	StartDate  string        `json:"start_date"`
	Total      int           `json:"total"`
	Completed  int           `json:"completed"`
	InProgress int           `json:"in_progress"`
	Pending    int           `json:"pending"`
	Progress   int           `json:"progress"`
}

// PlanningAlert surfaces a phase whose duration deviates from the standard
// cadence, collected from the persistent phase notes.
type PlanningAlert struct {
	AuditID    types.AuditID `json:"audit_id"`
	EntityName string        `json:"entity_name"`
	PhaseID    types.PhaseID `json:"phase_id"`
	PhaseName  string        `json:"phase_name"`
	Note       string        `json:"note"`
}

// Overview is the consolidated dashboard payload
type Overview struct {
	TotalEntities     int                `json:"total_entities"`
	InExecution       int                `json:"in_execution"`
	Completed         int                `json:"completed"`
	HighRisks         int                `json:"high_risks"`
	AverageProgress   int                `json:"average_progress"`
	TaskStats         []*EntityTaskStats `json:"task_stats"`
	PlanningAlerts    []*PlanningAlert   `json:"planning_alerts"`
	RiskDistribution  map[string]int     `json:"risk_distribution"`
	ComplianceSummary map[string]int     `json:"compliance_summary"`
}

// DashboardUseCase computes the consolidated program overview
type DashboardUseCase struct {
	repo interfaces.Repository
}

func NewDashboardUseCase(repo interfaces.Repository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Overview gathers entities, risks and criteria concurrently and reduces
// them into the dashboard payload. Only entities visible to the viewer are
// counted.
func (uc *DashboardUseCase) Overview(ctx context.Context, viewer access.Viewer) (*Overview, error) {
	var (
		entities []*model.AuditEntity
		risks    []*model.RiskControl
		criteria []*model.CLACriterion
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		entities, err = uc.repo.Audit().List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		risks, err = uc.repo.Risk().List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		criteria, err = uc.repo.Criterion().List(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to gather dashboard data")
	}

	visible := access.FilterEntities(entities, viewer, "")
	visibleIDs := make(map[types.AuditID]bool, len(visible))
	for _, e := range visible {
		visibleIDs[e.ID] = true
	}

	ov := &Overview{
		TotalEntities:     len(visible),
		TaskStats:         make([]*EntityTaskStats, 0, len(visible)),
		PlanningAlerts:    []*PlanningAlert{},
		RiskDistribution:  map[string]int{},
		ComplianceSummary: map[string]int{},
	}

	progressSum := 0
	for _, e := range visible {
		switch e.Status {
		case types.AuditStatusExecution:
			ov.InExecution++
		case types.AuditStatusCompleted:
			ov.Completed++
		}
		progressSum += e.Progress

		stats := &EntityTaskStats{
			AuditID:    e.ID,
			EntityName: e.Name,
			StartDate:  e.StartDate,
			Total:      len(e.Tasks),
		}
		for _, t := range e.Tasks {
			switch t.Status {
			case types.TaskStatusCompleted:
				stats.Completed++
			case types.TaskStatusInProgress:
				stats.InProgress++
			default:
				stats.Pending++
			}
		}
		if stats.Total > 0 {
			stats.Progress = stats.Completed * 100 / stats.Total
		}
		ov.TaskStats = append(ov.TaskStats, stats)

		for _, p := range e.Phases {
			if p.AlertNote == "" {
				continue
			}
			ov.PlanningAlerts = append(ov.PlanningAlerts, &PlanningAlert{
				AuditID:    e.ID,
				EntityName: e.Name,
				PhaseID:    p.ID,
				PhaseName:  p.Name,
				Note:       p.AlertNote,
			})
		}
	}
	if len(visible) > 0 {
		ov.AverageProgress = progressSum / len(visible)
	}

	for _, r := range risks {
		if !visibleIDs[r.AuditID] {
			continue
		}
		ov.RiskDistribution[r.TrafficLightLevel.String()]++
		if r.TrafficLightLevel == types.RiskLevelHigh || r.TrafficLightLevel == types.RiskLevelCritical {
			ov.HighRisks++
		}
	}
	for _, c := range criteria {
		if !visibleIDs[c.AuditID] {
			continue
		}
		ov.ComplianceSummary[c.Complies.String()]++
	}

	return ov, nil
}
