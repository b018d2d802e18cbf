package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func criterionListHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		criteria, err := uc.Criterion.List(r.Context(), viewer, r.URL.Query().Get("search"))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, criteria)
	}
}

func criterionCreateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var criterion model.CLACriterion
		if err := decodeJSON(r, &criterion); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		created, err := uc.Criterion.Create(r.Context(), viewer, &criterion)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func criterionUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var criterion model.CLACriterion
		if err := decodeJSON(r, &criterion); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		criterion.ID = types.CriterionID(chi.URLParam(r, "criterionID"))

		updated, err := uc.Criterion.Update(r.Context(), viewer, &criterion)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}
