package usecase

import (
	"context"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ScheduleUseCase renders the timeline view: the week grid plus a laid-out
// phase bar for every visible (entity, phase) pair.
type ScheduleUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewScheduleUseCase(repo interfaces.Repository) *ScheduleUseCase {
	return &ScheduleUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// SchedulePhase is one positioned phase bar.
type SchedulePhase struct {
	Phase  *model.Phase      `json:"phase"`
	Layout model.PhaseLayout `json:"layout"`
}

// ScheduleEntity is one timeline row.
type ScheduleEntity struct {
	AuditID     types.AuditID     `json:"audit_id"`
	EntityName  string            `json:"entity_name"`
	Status      types.AuditStatus `json:"status"`
	OffsetWeeks float64           `json:"offset_weeks"`
	Phases      []*SchedulePhase  `json:"phases"`
}

// Schedule is the complete timeline payload.
type Schedule struct {
	BaseDate string             `json:"base_date"`
	Columns  []model.WeekColumn `json:"columns"`
	Entities []*ScheduleEntity  `json:"entities"`
}

// Timeline lays out the program on the week grid. The base date is global,
// derived from every entity regardless of visibility, so an auditor's rows
// land on the same grid positions the full view uses. Rows themselves are
// viewer-scoped.
func (uc *ScheduleUseCase) Timeline(ctx context.Context, viewer access.Viewer) (*Schedule, error) {
	entities, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list audit entities for schedule")
	}

	base := model.BaseDate(entities, uc.now())

	visible := access.FilterEntities(entities, viewer, "")
	rows := make([]*ScheduleEntity, 0, len(visible))
	for _, e := range visible {
		row := &ScheduleEntity{
			AuditID:     e.ID,
			EntityName:  e.Name,
			Status:      e.Status,
			OffsetWeeks: model.EntityOffsetWeeks(e, base),
			Phases:      make([]*SchedulePhase, 0, len(e.Phases)),
		}
		for _, p := range e.Phases {
			row.Phases = append(row.Phases, &SchedulePhase{
				Phase:  p,
				Layout: model.LayoutPhase(e, p, base),
			})
		}
		rows = append(rows, row)
	}

	return &Schedule{
		BaseDate: base.Format("2006-01-02"),
		Columns:  model.GridColumns(base),
		Entities: rows,
	}, nil
}
