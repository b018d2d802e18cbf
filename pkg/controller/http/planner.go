package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func plannerListHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := uc.Planner.List(r.Context())
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, entries)
	}
}

func plannerCreateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var entry model.TaskPlannerEntry
		if err := decodeJSON(r, &entry); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		created, err := uc.Planner.Create(r.Context(), viewer, &entry)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func plannerUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var entry model.TaskPlannerEntry
		if err := decodeJSON(r, &entry); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		entry.ID = types.EntryID(chi.URLParam(r, "entryID"))

		updated, err := uc.Planner.Update(r.Context(), viewer, &entry)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func plannerDeleteHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		if err := uc.Planner.Delete(r.Context(), viewer, types.EntryID(chi.URLParam(r, "entryID"))); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

func areaListHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := uc.Planner.ListAreas(r.Context())
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, areas)
	}
}

func areaAddHandler(uc *usecase.UseCases) http.HandlerFunc {
	type areaRequest struct {
		Name string `json:"name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var req areaRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		if err := uc.Planner.AddArea(r.Context(), viewer, req.Name); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, successResponse{Success: true})
	}
}
