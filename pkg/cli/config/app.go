package config

import (
	"os"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig is the optional TOML application configuration. It customizes
// the standard phase cadence and the initial area vocabulary without a
// rebuild.
type AppConfig struct {
	path string

	Phases []PhaseConfig `toml:"phase"`
	Areas  []string      `toml:"areas"`
}

// PhaseConfig is one entry of the configured engagement cadence
type PhaseConfig struct {
	Name          string `toml:"name"`
	Objective     string `toml:"objective"`
	StartWeek     int    `toml:"start_week"`
	DurationWeeks int    `toml:"duration_weeks"`
}

// Validate checks if the PhaseConfig is valid
func (p *PhaseConfig) Validate() error {
	if p.Name == "" {
		return goerr.New("phase name is required")
	}
	if p.StartWeek < 1 {
		return goerr.New("phase start_week must be at least 1", goerr.V("name", p.Name))
	}
	if p.DurationWeeks < 1 {
		return goerr.New("phase duration_weeks must be at least 1", goerr.V("name", p.Name))
	}
	return nil
}

// Flags returns CLI flags for the app configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to TOML application configuration",
			Sources:     cli.EnvVars("CONTROLPRO_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Validate checks the loaded configuration
func (a *AppConfig) Validate() error {
	names := make(map[string]bool)
	for i := range a.Phases {
		if err := a.Phases[i].Validate(); err != nil {
			return goerr.Wrap(err, "invalid phase config")
		}
		if names[a.Phases[i].Name] {
			return goerr.New("duplicate phase name", goerr.V("name", a.Phases[i].Name))
		}
		names[a.Phases[i].Name] = true
	}
	return nil
}

// Configure loads the TOML file when a path is set, validates it, and
// installs the configured cadence. Without a path the built-in defaults
// stay in place.
func (a *AppConfig) Configure() error {
	if a.path == "" {
		return nil
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return goerr.Wrap(err, "failed to read app config", goerr.V("path", a.path))
	}
	if err := toml.Unmarshal(data, a); err != nil {
		return goerr.Wrap(err, "failed to parse app config", goerr.V("path", a.path))
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if len(a.Phases) > 0 {
		cadence := make([]model.CadencePhase, 0, len(a.Phases))
		for _, p := range a.Phases {
			cadence = append(cadence, model.CadencePhase{
				Name:          p.Name,
				Objective:     p.Objective,
				StartWeek:     p.StartWeek,
				DurationWeeks: p.DurationWeeks,
			})
		}
		model.SetStandardCadence(cadence)
	}

	return nil
}

// InitialAreas returns the configured area vocabulary
func (a *AppConfig) InitialAreas() []string {
	return a.Areas
}
