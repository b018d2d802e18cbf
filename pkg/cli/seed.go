package cli

import (
	"context"
	"fmt"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/cli/config"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"
)

var seedAreas = []string{
	"Compras",
	"Licitación",
	"Almacén",
	"Finanzas",
	"RRHH",
}

var seedPeople = []*model.Person{
	{FullName: "Bladimir Felix", Role: "Audit Manager", Email: "b.felix@controlpro.com", AvatarURL: "https://picsum.photos/seed/bladimir/100", VisibleInTeam: true},
	{FullName: "Danerys Martinez", Role: "Lead Auditor", Email: "d.martinez@controlpro.com", AvatarURL: "https://picsum.photos/seed/danerys/100", VisibleInTeam: true},
	{FullName: "Yosmaira Reyes", Role: "Senior Staff", Email: "y.reyes@controlpro.com", AvatarURL: "https://picsum.photos/seed/yosmaira/100", VisibleInTeam: true},
	{FullName: "Natalia Batista", Role: "Auditor", Email: "n.batista@controlpro.com", AvatarURL: "https://picsum.photos/seed/natalia/100", VisibleInTeam: true},
}

var seedPlannerEntries = []*model.TaskPlannerEntry{
	{Scope: "Planeación de la auditoría", Task: "Identificación del marco normativo aplicable (Políticas internas y leyes)", Phase: "Fase I - Planificación"},
	{Scope: "Planeación de la auditoría", Task: "Conocimiento del proceso (Levantamiento de información)", Phase: "Fase I - Planificación"},
	{Scope: "Planeación de la auditoría", Task: "Identificación de controles existentes (Controles preventivos y detectivos)", Phase: "Fase I - Planificación"},
	{Scope: "Levantamiento del proceso de compras", Task: "Identificación del responsable del proceso (Quién autoriza, quién ejecuta)", Phase: "Fase II - Levantamiento de información"},
	{Scope: "Levantamiento del proceso de compras", Task: "Entrevista inicial con el área de compras (Entender cómo funciona)", Phase: "Fase II - Levantamiento de información"},
	{Scope: "Levantamiento del proceso de compras", Task: "Solicitud del manual o políticas de compras (Validar si están formalizadas)", Phase: "Fase II - Levantamiento de información"},
	{Scope: "Revisión de proveedores", Task: "Validación de existencia de expediente por proveedor (Documentación legal)", Phase: "Fase II - Levantamiento de información"},
	{Scope: "Evaluación del control interno", Task: "Identificación de controles preventivos (Autorizaciones previas)", Phase: "Fase III - Evaluación y Pruebas"},
	{Scope: "Evaluación del control interno", Task: "Evaluación de segregación de funciones (Solicita vs Aprueba vs Paga)", Phase: "Fase III - Evaluación y Pruebas"},
	{Scope: "Evaluación del control interno", Task: "Determinación del nivel de riesgo residual (Después de aplicar controles)", Phase: "Fase III - Evaluación y Pruebas"},
	{Scope: "Selección de muestras", Task: "Definición del método de muestreo (Aleatorio, dirigido, por juicio)", Phase: "Fase III - Evaluación y Pruebas"},
	{Scope: "Ejecución de pruebas de auditoría", Task: "Verificación de factura vs orden de compra (Coincidencia en montos y descripción)", Phase: "Fase III - Evaluación y Pruebas"},
	{Scope: "Analisis de hallazgos", Task: "Consolidación de hallazgos preliminares (Reunir todas las observaciones)", Phase: "Fase IV - Análisis de Hallazgos"},
	{Scope: "Analisis de hallazgos", Task: "Determinación de la causa raíz (Por qué ocurrió la falla)", Phase: "Fase IV - Análisis de Hallazgos"},
	{Scope: "Informe", Task: "Redacción del borrador del informe (Estructura formal y técnica)", Phase: "Fase IV - Análisis de Hallazgos"},
	{Scope: "Informe", Task: "Elaboración de conclusiones generales (Evaluación global del control)", Phase: "Fase IV - Análisis de Hallazgos"},
	{Scope: "Cierre", Task: "Presentación de hallazgos finales (Explicación técnica de riesgos)", Phase: "Fase V - Informe y Cierre"},
	{Scope: "Cierre", Task: "Elaboración del plan de acción definitivo (Con responsables y fechas)", Phase: "Fase V - Informe y Cierre"},
	{Scope: "Cierre", Task: "Archivo digital y físico de papeles de trabajo (Organización para consulta)", Phase: "Fase V - Informe y Cierre"},
}

func phasesWithStatus(status types.AuditStatus) []*model.Phase {
	phases := model.StandardPhases()
	for _, p := range phases {
		p.Status = status
	}
	return phases
}

func cmdSeed() *cli.Command {
	var repoCfg config.Repository
	var authCfg config.Auth
	var masterPassword string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "master-password",
			Usage:       "Password for the master login (credential is skipped when empty)",
			Sources:     cli.EnvVars("CONTROLPRO_MASTER_PASSWORD"),
			Destination: &masterPassword,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Load the demo catalogue into the repository",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close() //nolint:errcheck

			return seed(ctx, repo, authCfg.MasterEmail(), masterPassword)
		},
	}
}

func seed(ctx context.Context, repo interfaces.Repository, masterEmail, masterPassword string) error {
	heading := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)

	heading.Println("Seeding areas")
	for _, area := range seedAreas {
		if err := repo.Area().Add(ctx, area); err != nil {
			return goerr.Wrap(err, "failed to seed area", goerr.V("area", area))
		}
		ok.Printf("  ✓ %s\n", area)
	}

	heading.Println("Seeding people")
	people := make([]*model.Person, 0, len(seedPeople))
	for _, p := range seedPeople {
		created, err := repo.Person().Create(ctx, p)
		if err != nil {
			return goerr.Wrap(err, "failed to seed person", goerr.V("name", p.FullName))
		}
		people = append(people, created)
		ok.Printf("  ✓ %s (%s)\n", created.FullName, created.Role)
	}

	heading.Println("Seeding audit entities")
	entitySeeds := []struct {
		name        string
		responsible int
		scope       string
		status      types.AuditStatus
		progress    int
		startDate   string
		phaseStatus types.AuditStatus
		tasks       []*model.Task
	}{
		{
			name: "Islacana Investments", responsible: 0,
			scope: "Auditoría Financiera Anual 2024", status: types.AuditStatusCompleted,
			progress: 100, startDate: "2026-02-16", phaseStatus: types.AuditStatusCompleted,
			tasks: []*model.Task{
				{Title: "Cierre de papeles de trabajo", Status: types.TaskStatusCompleted},
				{Title: "Entrega del informe final", Status: types.TaskStatusCompleted},
			},
		},
		{
			name: "Atlantida (Urbanización)", responsible: 1,
			scope: "Auditoría de Procesos Urbanísticos y Licencias", status: types.AuditStatusExecution,
			progress: 45, startDate: "2026-02-16", phaseStatus: types.AuditStatusPlanning,
			tasks: []*model.Task{
				{Title: "Revisión de Licencias de Obra", Status: types.TaskStatusInProgress},
				{Title: "Cotejo de Planos Maestros", Status: types.TaskStatusCompleted},
				{Title: "Entrevistas de campo", Status: types.TaskStatusPending},
				{Title: "Validación de presupuestos", Status: types.TaskStatusInProgress},
			},
		},
		{
			name: "Atlantida (River Island)", responsible: 2,
			scope: "Auditoría de Control Interno - Desarrollo River Island", status: types.AuditStatusPlanning,
			progress: 15, startDate: "2026-03-02", phaseStatus: types.AuditStatusPlanning,
			tasks: []*model.Task{
				{Title: "Levantamiento del proceso de compras", Status: types.TaskStatusInProgress},
				{Title: "Solicitud de expedientes de proveedores", Status: types.TaskStatusPending},
			},
		},
		{
			name: "Noval Cortecito (Oceana)", responsible: 3,
			scope: "Auditoría de Control Interno - Complejo Oceana", status: types.AuditStatusPlanning,
			progress: 0, startDate: "2026-03-16", phaseStatus: types.AuditStatusPlanning,
			tasks: []*model.Task{
				{Title: "Definición del alcance", Status: types.TaskStatusPending},
				{Title: "Reunión de apertura", Status: types.TaskStatusPending},
			},
		},
	}

	entities := make([]*model.AuditEntity, 0, len(entitySeeds))
	for _, e := range entitySeeds {
		for i, t := range e.tasks {
			t.AssignedTo = people[(e.responsible+i)%len(people)].ID
		}
		created, err := repo.Audit().Create(ctx, &model.AuditEntity{
			Name:          e.name,
			ResponsibleID: people[e.responsible].ID,
			Scope:         e.scope,
			Status:        e.status,
			Progress:      e.progress,
			StartDate:     e.startDate,
			Phases:        phasesWithStatus(e.phaseStatus),
			Tasks:         e.tasks,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to seed entity", goerr.V("name", e.name))
		}
		entities = append(entities, created)
		ok.Printf("  ✓ %s\n", created.Name)
	}

	heading.Println("Seeding risk matrix")
	risks := []*model.RiskControl{
		{
			AuditID: entities[0].ID, Process: "Procure-to-Pay", Area: "Finanzas",
			RiskDescription:  "Pagos duplicados a proveedores externos.",
			Impact:           4, Probability: 3,
			ExistingControls: "Conciliación bancaria mensual", ControlEffectiveness: 3,
			Status:           types.RiskStatusCompleted, Responsible: "Bladimir Felix",
			ImplementationDate: "2026-05-15",
			Recommendation:     "Implementar software de detección automática de duplicados.",
		},
		{
			AuditID: entities[2].ID, Process: "Nómina", Area: "RRHH",
			RiskDescription:  "Cálculo incorrecto de beneficios por errores manuales.",
			Impact:           5, Probability: 4,
			ExistingControls: "Revisión por par antes de pago", ControlEffectiveness: 2,
			Status:           types.RiskStatusInProgress, Responsible: "Danerys Martinez",
			ImplementationDate: "2026-06-01",
			Recommendation:     "Automatizar el cálculo de bonificaciones en el sistema ERP.",
		},
	}
	for _, r := range risks {
		r.Rescore()
		if _, err := repo.Risk().Create(ctx, r); err != nil {
			return goerr.Wrap(err, "failed to seed risk")
		}
		ok.Printf("  ✓ %s (%s)\n", r.RiskDescription, r.TrafficLightLevel)
	}

	heading.Println("Seeding compliance criteria")
	criteria := []*model.CLACriterion{
		{
			AuditID: entities[0].ID, Area: "Finanzas", Criterion: "C-01",
			Description: "Existencia de manual de políticas contables actualizado.",
			Source:      "Manual de Políticas V2.0", Complies: types.ComplianceYes,
		},
		{
			AuditID: entities[2].ID, Area: "Operaciones", Criterion: "C-02",
			Description: "Segregación de funciones en la aprobación de pagos.",
			Source:      "Estructura Organizativa", Complies: types.ComplianceNo,
		},
	}
	for _, c := range criteria {
		if _, err := repo.Criterion().Create(ctx, c); err != nil {
			return goerr.Wrap(err, "failed to seed criterion", goerr.V("criterion", c.Criterion))
		}
		ok.Printf("  ✓ %s\n", c.Criterion)
	}

	heading.Println("Seeding task planner")
	for _, e := range seedPlannerEntries {
		if _, err := repo.Planner().Create(ctx, e); err != nil {
			return goerr.Wrap(err, "failed to seed planner entry")
		}
	}
	ok.Printf("  ✓ %d entries\n", len(seedPlannerEntries))

	if masterPassword != "" {
		heading.Println("Creating master credential")
		hash, err := bcrypt.GenerateFromPassword([]byte(masterPassword), bcrypt.DefaultCost)
		if err != nil {
			return goerr.Wrap(err, "failed to hash master password")
		}
		if err := repo.Credential().Put(ctx, &model.Credential{
			Email:        masterEmail,
			PasswordHash: string(hash),
		}); err != nil {
			return goerr.Wrap(err, "failed to store master credential")
		}
		ok.Printf("  ✓ %s\n", masterEmail)
	}

	fmt.Println()
	ok.Println("Seed completed")
	return nil
}
