package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

type phaseUpdateResponse struct {
	Phase *model.Phase      `json:"phase"`
	Alert *model.PhaseAlert `json:"alert,omitempty"`
}

func auditListHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		entities, err := uc.Audit.List(r.Context(), viewer, r.URL.Query().Get("search"))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, entities)
	}
}

func auditGetHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		entity, err := uc.Audit.Get(r.Context(), viewer, types.AuditID(chi.URLParam(r, "auditID")))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, entity)
	}
}

func auditCreateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var entity model.AuditEntity
		if err := decodeJSON(r, &entity); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		created, err := uc.Audit.Create(r.Context(), viewer, &entity)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func auditUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var entity model.AuditEntity
		if err := decodeJSON(r, &entity); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		entity.ID = types.AuditID(chi.URLParam(r, "auditID"))

		updated, err := uc.Audit.Update(r.Context(), viewer, &entity)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func phaseUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var phase model.Phase
		if err := decodeJSON(r, &phase); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		phase.ID = types.PhaseID(chi.URLParam(r, "phaseID"))

		updated, alert, err := uc.Audit.UpdatePhase(r.Context(), viewer, types.AuditID(chi.URLParam(r, "auditID")), &phase)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, phaseUpdateResponse{Phase: updated, Alert: alert})
	}
}

func phaseStatusHandler(uc *usecase.UseCases) http.HandlerFunc {
	type statusRequest struct {
		Status types.AuditStatus `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var req statusRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		updated, err := uc.Audit.UpdatePhaseStatus(r.Context(), viewer,
			types.AuditID(chi.URLParam(r, "auditID")),
			types.PhaseID(chi.URLParam(r, "phaseID")),
			req.Status)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func taskUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var task model.Task
		if err := decodeJSON(r, &task); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		task.ID = types.TaskID(chi.URLParam(r, "taskID"))

		updated, err := uc.Audit.UpdateTask(r.Context(), viewer, types.AuditID(chi.URLParam(r, "auditID")), &task)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}
