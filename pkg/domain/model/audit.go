package model

import (
	"fmt"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// AuditEntity represents an audited organizational unit/engagement.
// Phases and Tasks arrive populated from the repository; the repository is
// the system of record and in-memory copies have no independent lifecycle.
type AuditEntity struct {
	ID            types.AuditID     `json:"id"`
	Name          string            `json:"name"`
	ResponsibleID types.PersonID    `json:"responsible_id"`
	Scope         string            `json:"scope"`
	Status        types.AuditStatus `json:"status"`
	Progress      int               `json:"progress"`
	StartDate     string            `json:"start_date"`
	LastUpdated   time.Time         `json:"last_updated"`
	Phases        []*Phase          `json:"phases"`
	Tasks         []*Task           `json:"tasks"`
}

// Phase is one of the sequential stages of an engagement. StartWeek is a
// 1-based offset within the entity's own timeline.
type Phase struct {
	ID            types.PhaseID     `json:"id"`
	Name          string            `json:"name"`
	Objectives    []string          `json:"objectives"`
	StartWeek     int               `json:"start_week"`
	DurationWeeks int               `json:"duration_weeks"`
	Status        types.AuditStatus `json:"status"`
	AlertNote     string            `json:"alert_note,omitempty"`
}

// Task is a unit of audit work assigned to a person.
type Task struct {
	ID         types.TaskID     `json:"id"`
	Title      string           `json:"title"`
	Status     types.TaskStatus `json:"status"`
	AssignedTo types.PersonID   `json:"assigned_to"`
}

// Phase returns the phase with the given ID, or nil if not present.
func (e *AuditEntity) Phase(id types.PhaseID) *Phase {
	for _, p := range e.Phases {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Task returns the task with the given ID, or nil if not present.
func (e *AuditEntity) Task(id types.TaskID) *Task {
	for _, t := range e.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// CadencePhase describes one entry of the standard engagement cadence
type CadencePhase struct {
	Name          string
	Objective     string
	StartWeek     int
	DurationWeeks int
}

// standardCadence is the default five-phase plan: 2,2,3,2,2 weeks. It can
// be replaced once at startup through SetStandardCadence.
var standardCadence = []CadencePhase{
	{"Fase I - Planificación", "Definir alcance, metodología y riesgos iniciales.", 1, 2},
	{"Fase II - Levantamiento de información", "Recopilar evidencia y comprender procesos.", 3, 2},
	{"Fase III - Evaluación y Pruebas", "Validar controles y medir riesgos.", 5, 3},
	{"Fase IV - Análisis de Hallazgos", "Consolidar resultados.", 8, 2},
	{"Fase V - Informe y Cierre", "Presentar resultados y formalizar cierre.", 10, 2},
}

// SetStandardCadence replaces the default cadence. Intended for process
// startup from the app configuration, before any entity is created.
func SetStandardCadence(phases []CadencePhase) {
	if len(phases) == 0 {
		return
	}
	standardCadence = phases
}

// StandardPhases returns a fresh set of the five standard phases used to
// seed a newly created audit entity.
func StandardPhases() []*Phase {
	phases := make([]*Phase, 0, len(standardCadence))
	for _, sp := range standardCadence {
		phases = append(phases, &Phase{
			ID:            types.NewPhaseID(),
			Name:          sp.Name,
			Objectives:    []string{sp.Objective},
			StartWeek:     sp.StartWeek,
			DurationWeeks: sp.DurationWeeks,
			Status:        types.AuditStatusPlanning,
		})
	}
	return phases
}

// StandardDurationWeeks returns the standard cadence duration for the phase
// name, or 0 when the phase is not part of the standard plan.
func StandardDurationWeeks(phaseName string) int {
	for _, sp := range standardCadence {
		if sp.Name == phaseName {
			return sp.DurationWeeks
		}
	}
	return 0
}

// PhaseAlert is a one-shot, transient notification emitted when a phase
// duration is edited away from its previous value. It is derived at the
// moment of the edit and never persisted.
type PhaseAlert struct {
	AuditID   types.AuditID `json:"audit_id"`
	PhaseID   types.PhaseID `json:"phase_id"`
	PhaseName string        `json:"phase_name"`
	OldWeeks  int           `json:"old_weeks"`
	NewWeeks  int           `json:"new_weeks"`
	Message   string        `json:"message"`
}

// NewPhaseAlert builds the alert for a duration change. Returns nil when the
// duration did not change.
func NewPhaseAlert(auditID types.AuditID, prev, next *Phase) *PhaseAlert {
	if prev.DurationWeeks == next.DurationWeeks {
		return nil
	}
	return &PhaseAlert{
		AuditID:   auditID,
		PhaseID:   prev.ID,
		PhaseName: prev.Name,
		OldWeeks:  prev.DurationWeeks,
		NewWeeks:  next.DurationWeeks,
		Message:   fmt.Sprintf("La planificación de %q ha sido modificada a %d semanas.", prev.Name, next.DurationWeeks),
	}
}
