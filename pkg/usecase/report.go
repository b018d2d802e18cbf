package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/utils/logging"
	"github.com/m-mizutani/gollem"
)

// ReportErrorMessage is the fixed user-facing text returned when the AI
// engine is unavailable or fails. It is part of the API contract; callers
// can rely on it instead of parsing error payloads.
const ReportErrorMessage = "Error al conectar con el motor de inteligencia artificial. Por favor, verifique su conexión e intente nuevamente."

const reportEmptyMessage = "No se pudo generar el resumen automáticamente."

// ReportUseCase generates the executive narrative from the program state.
// With a nil LLM client generation is permanently degraded and the error
// message is returned.
type ReportUseCase struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
}

func NewReportUseCase(repo interfaces.Repository, llmClient gollem.LLMClient) *ReportUseCase {
	return &ReportUseCase{
		repo:      repo,
		llmClient: llmClient,
	}
}

// Generate builds the executive summary for the entities visible to the
// viewer. It never returns an LLM error: any failure degrades to the fixed
// Spanish error text so the caller can always render something.
func (uc *ReportUseCase) Generate(ctx context.Context, viewer access.Viewer) (string, error) {
	entities, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return "", err
	}
	visible := access.FilterEntities(entities, viewer, "")

	var data strings.Builder
	for _, e := range visible {
		fmt.Fprintf(&data, "- %s: Progreso %d%%, Estado %s, Tareas: %d\n", e.Name, e.Progress, e.Status.Label(), len(e.Tasks))
	}

	var alerts []string
	for _, e := range visible {
		for _, p := range e.Phases {
			if p.AlertNote != "" {
				alerts = append(alerts, fmt.Sprintf("- %s (%s): %s", e.Name, p.Name, p.AlertNote))
			}
		}
	}
	alertsText := "No hay desviaciones en los tiempos de planificación estándar."
	if len(alerts) > 0 {
		alertsText = "Alertas de planificación detectadas:\n" + strings.Join(alerts, "\n")
	}

	prompt := fmt.Sprintf(`Como consultor experto en auditoría y control interno, genera un resumen ejecutivo profesional y estratégico basado en los siguientes datos de un programa de auditoría:

%s

%s

Incluye:
1. Una evaluación general del estado del programa.
2. Identificación de áreas críticas o retrasos significativos (especialmente si hay cambios en la duración de las fases).
3. Recomendaciones de alta gerencia para optimizar el cumplimiento.

El tono debe ser ejecutivo, formal y constructivo. Limítate a unos 3-4 párrafos.`, data.String(), alertsText)

	return uc.generate(ctx, prompt), nil
}

func (uc *ReportUseCase) generate(ctx context.Context, prompt string) string {
	if uc.llmClient == nil {
		return ReportErrorMessage
	}

	logger := logging.From(ctx)

	session, err := uc.llmClient.NewSession(ctx)
	if err != nil {
		logger.Error("failed to create LLM session", "error", err)
		return ReportErrorMessage
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		logger.Error("failed to generate executive report", "error", err)
		return ReportErrorMessage
	}

	if len(resp.Texts) == 0 || strings.TrimSpace(resp.Texts[0]) == "" {
		return reportEmptyMessage
	}

	return strings.Join(resp.Texts, "\n")
}
