package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/repository/memory"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
)

type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"Resumen ejecutivo de prueba."}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func seedReportData(t *testing.T) *memory.Memory {
	t.Helper()
	repo := memory.New()

	phases := model.StandardPhases()
	phases[1].DurationWeeks = 4
	phases[1].AlertNote = "Duración modificada: el estándar para esta fase es de 2 semanas."

	_, err := repo.Audit().Create(context.Background(), &model.AuditEntity{
		Name:     "Atlantida (Urbanización)",
		Status:   types.AuditStatusExecution,
		Progress: 45,
		Phases:   phases,
		Tasks:    []*model.Task{{Title: "Revisión de Licencias de Obra"}},
	})
	gt.NoError(t, err).Required()

	return repo
}

func TestReportGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("prompt carries program data and planning alerts", func(t *testing.T) {
		repo := seedReportData(t)

		var captured string
		client := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						for _, in := range input {
							if text, ok := in.(gollem.Text); ok {
								captured = string(text)
							}
						}
						return &gollem.Response{Texts: []string{"Resumen ejecutivo."}}, nil
					},
				}, nil
			},
		}

		uc := usecase.NewReportUseCase(repo, client)
		summary, err := uc.Generate(ctx, masterViewer)
		gt.NoError(t, err).Required()
		gt.Value(t, summary).Equal("Resumen ejecutivo.")

		gt.String(t, captured).Contains("resumen ejecutivo")
		gt.String(t, captured).Contains("- Atlantida (Urbanización): Progreso 45%, Estado En Curso, Tareas: 1")
		gt.String(t, captured).Contains("Alertas de planificación detectadas:")
		gt.String(t, captured).Contains("Fase II - Levantamiento de información")
	})

	t.Run("no deviations reported when no phase notes exist", func(t *testing.T) {
		repo := memory.New()
		_, err := repo.Audit().Create(ctx, &model.AuditEntity{Name: "Limpia"})
		gt.NoError(t, err).Required()

		var captured string
		client := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						for _, in := range input {
							if text, ok := in.(gollem.Text); ok {
								captured = string(text)
							}
						}
						return &gollem.Response{Texts: []string{"ok"}}, nil
					},
				}, nil
			},
		}

		uc := usecase.NewReportUseCase(repo, client)
		_, err = uc.Generate(ctx, masterViewer)
		gt.NoError(t, err).Required()
		gt.String(t, captured).Contains("No hay desviaciones en los tiempos de planificación estándar.")
	})

	t.Run("nil client degrades to the fixed error text", func(t *testing.T) {
		uc := usecase.NewReportUseCase(seedReportData(t), nil)

		summary, err := uc.Generate(ctx, masterViewer)
		gt.NoError(t, err).Required()
		gt.Value(t, summary).Equal(usecase.ReportErrorMessage)
	})

	t.Run("LLM failure degrades instead of erroring", func(t *testing.T) {
		client := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return nil, errors.New("quota exceeded")
					},
				}, nil
			},
		}

		uc := usecase.NewReportUseCase(seedReportData(t), client)
		summary, err := uc.Generate(ctx, masterViewer)
		gt.NoError(t, err).Required()
		gt.Value(t, summary).Equal(usecase.ReportErrorMessage)
	})

	t.Run("blank response gets the empty-summary text", func(t *testing.T) {
		client := &mockLLMClient{
			newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
				return &mockLLMSession{
					generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
						return &gollem.Response{Texts: []string{"   "}}, nil
					},
				}, nil
			},
		}

		uc := usecase.NewReportUseCase(seedReportData(t), client)
		summary, err := uc.Generate(ctx, masterViewer)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(summary, "No se pudo generar")).True()
	})
}
