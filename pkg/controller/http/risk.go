package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func riskListHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		risks, err := uc.Risk.List(r.Context(), viewer, r.URL.Query().Get("search"))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, risks)
	}
}

func riskCreateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var risk model.RiskControl
		if err := decodeJSON(r, &risk); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		created, err := uc.Risk.Create(r.Context(), viewer, &risk)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func riskUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var risk model.RiskControl
		if err := decodeJSON(r, &risk); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		risk.ID = types.RiskID(chi.URLParam(r, "riskID"))

		updated, err := uc.Risk.Update(r.Context(), viewer, &risk)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func riskDeleteHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		if err := uc.Risk.Delete(r.Context(), viewer, types.RiskID(chi.URLParam(r, "riskID"))); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}
