package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/cli/config"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
)

// restoreCadence puts the built-in cadence back after a test replaced it
func restoreCadence(t *testing.T) {
	t.Helper()

	var saved []model.CadencePhase
	for _, p := range model.StandardPhases() {
		objective := ""
		if len(p.Objectives) > 0 {
			objective = p.Objectives[0]
		}
		saved = append(saved, model.CadencePhase{
			Name:          p.Name,
			Objective:     objective,
			StartWeek:     p.StartWeek,
			DurationWeeks: p.DurationWeeks,
		})
	}
	t.Cleanup(func() {
		model.SetStandardCadence(saved)
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "controlpro.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestAppConfigure(t *testing.T) {
	t.Run("no path leaves defaults in place", func(t *testing.T) {
		cfg := config.NewAppConfigForTest("")
		gt.NoError(t, cfg.Configure())

		phases := model.StandardPhases()
		gt.Array(t, phases).Length(5)
		gt.Value(t, phases[0].Name).Equal("Fase I - Planificación")
	})

	t.Run("configured cadence replaces the default", func(t *testing.T) {
		restoreCadence(t)

		path := writeConfig(t, `
areas = ["Compras", "Finanzas"]

[[phase]]
name = "Fase I - Alcance"
objective = "Delimitar el trabajo."
start_week = 1
duration_weeks = 1

[[phase]]
name = "Fase II - Ejecución"
objective = "Ejecutar pruebas."
start_week = 2
duration_weeks = 4
`)

		cfg := config.NewAppConfigForTest(path)
		gt.NoError(t, cfg.Configure()).Required()

		gt.Array(t, cfg.InitialAreas()).Equal([]string{"Compras", "Finanzas"})

		phases := model.StandardPhases()
		gt.Array(t, phases).Length(2)
		gt.Value(t, phases[0].Name).Equal("Fase I - Alcance")
		gt.Value(t, phases[0].DurationWeeks).Equal(1)
		gt.Value(t, phases[1].StartWeek).Equal(2)
		gt.Value(t, model.StandardDurationWeeks("Fase II - Ejecución")).Equal(4)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.NewAppConfigForTest(filepath.Join(t.TempDir(), "absent.toml"))
		gt.Error(t, cfg.Configure())
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeConfig(t, `[[phase] name = broken`)
		cfg := config.NewAppConfigForTest(path)
		gt.Error(t, cfg.Configure())
	})

	t.Run("invalid cadence is rejected before install", func(t *testing.T) {
		restoreCadence(t)

		cases := []struct {
			name    string
			content string
		}{
			{
				name: "missing phase name",
				content: `
[[phase]]
start_week = 1
duration_weeks = 2
`,
			},
			{
				name: "start week below one",
				content: `
[[phase]]
name = "Fase I"
start_week = 0
duration_weeks = 2
`,
			},
			{
				name: "duration below one",
				content: `
[[phase]]
name = "Fase I"
start_week = 1
duration_weeks = 0
`,
			},
			{
				name: "duplicate phase names",
				content: `
[[phase]]
name = "Fase I"
start_week = 1
duration_weeks = 2

[[phase]]
name = "Fase I"
start_week = 3
duration_weeks = 2
`,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cfg := config.NewAppConfigForTest(writeConfig(t, tc.content))
				gt.Error(t, cfg.Configure())
			})
		}

		// a rejected config must not have touched the cadence
		phases := model.StandardPhases()
		gt.Array(t, phases).Length(5)
	})
}

func TestPhaseConfigValidate(t *testing.T) {
	valid := config.PhaseConfig{
		Name:          "Fase I - Planificación",
		Objective:     "Definir alcance.",
		StartWeek:     1,
		DurationWeeks: 2,
	}
	gt.NoError(t, valid.Validate())
}
