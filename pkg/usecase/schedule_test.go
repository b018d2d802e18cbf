package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/repository/memory"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestScheduleTimeline(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*usecase.ScheduleUseCase, *model.AuditEntity, *model.AuditEntity) {
		t.Helper()
		repo := memory.New()

		// 2026-02-18 is a Wednesday; the week's Monday is 2026-02-16
		early, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:          "Islacana Investments",
			ResponsibleID: types.NewPersonID(),
			StartDate:     "2026-02-18",
			Phases:        model.StandardPhases(),
		})
		gt.NoError(t, err).Required()

		late, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:          "Atlantida (River Island)",
			ResponsibleID: types.NewPersonID(),
			StartDate:     "2026-03-02",
			Phases:        model.StandardPhases(),
		})
		gt.NoError(t, err).Required()

		return usecase.NewScheduleUseCase(repo), early, late
	}

	t.Run("base date and columns from the earliest entity", func(t *testing.T) {
		uc, _, _ := seed(t)

		schedule, err := uc.Timeline(ctx, masterViewer)
		gt.NoError(t, err).Required()

		gt.Value(t, schedule.BaseDate).Equal("2026-02-16")
		gt.Array(t, schedule.Columns).Length(model.GridWeeks)
		gt.Value(t, schedule.Columns[0].Label).Equal("Sem. 1")
		gt.Value(t, schedule.Columns[0].Dates).Equal("16/02 - 20/02")
		gt.Value(t, schedule.Columns[0].Start).Equal("2026-02-16")
	})

	t.Run("rows carry offsets and positioned phase bars", func(t *testing.T) {
		uc, early, late := seed(t)

		schedule, err := uc.Timeline(ctx, masterViewer)
		gt.NoError(t, err).Required()
		gt.Array(t, schedule.Entities).Length(2)

		var earlyRow, lateRow *usecase.ScheduleEntity
		for _, row := range schedule.Entities {
			switch row.AuditID {
			case early.ID:
				earlyRow = row
			case late.ID:
				lateRow = row
			}
		}
		gt.Value(t, earlyRow).NotNil()
		gt.Value(t, lateRow).NotNil()

		// Wednesday start is 2 days past the Monday base
		gt.Value(t, earlyRow.OffsetWeeks).Equal(2.0 / 7.0)
		gt.Value(t, lateRow.OffsetWeeks).Equal(2.0)

		gt.Array(t, earlyRow.Phases).Length(5)
		first := earlyRow.Phases[0] // start week 1
		gt.Value(t, first.Layout.LeftPx).Equal(2.0 / 7.0 * model.ColumnWidth)
		gt.Value(t, first.Layout.WidthPx).Equal(2.0 * model.ColumnWidth)

		third := lateRow.Phases[2] // Fase III, start week 5, 3 weeks
		gt.Value(t, third.Layout.LeftPx).Equal((2.0 + 4.0) * model.ColumnWidth)
		gt.Value(t, third.Layout.WidthPx).Equal(3.0 * model.ColumnWidth)
	})

	t.Run("auditor sees own rows on the global grid", func(t *testing.T) {
		uc, _, late := seed(t)

		auditor := access.Viewer{Role: types.RoleAuditor, PersonID: types.NewPersonID()}
		// nobody's responsible yet, so the auditor sees nothing
		schedule, err := uc.Timeline(ctx, auditor)
		gt.NoError(t, err).Required()
		gt.Array(t, schedule.Entities).Length(0)

		schedule, err = uc.Timeline(ctx, access.Viewer{Role: types.RoleAuditor, PersonID: late.ResponsibleID})
		gt.NoError(t, err).Required()

		// the base date still comes from the earliest entity program-wide
		gt.Value(t, schedule.BaseDate).Equal("2026-02-16")
		gt.Array(t, schedule.Entities).Length(1)
		gt.Value(t, schedule.Entities[0].OffsetWeeks).Equal(2.0)
	})

	t.Run("empty program falls back to the current week", func(t *testing.T) {
		uc := usecase.NewScheduleUseCase(memory.New())
		uc.SetNowForTest(func() time.Time {
			return time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC) // Thursday
		})

		schedule, err := uc.Timeline(ctx, masterViewer)
		gt.NoError(t, err).Required()

		gt.Value(t, schedule.BaseDate).Equal("2026-03-02")
		gt.Array(t, schedule.Entities).Length(0)
		gt.Array(t, schedule.Columns).Length(model.GridWeeks)
	})
}
