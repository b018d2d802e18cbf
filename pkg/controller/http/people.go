package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/go-chi/chi/v5"
)

func personListHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		people, err := uc.People.List(r.Context(), r.URL.Query().Get("search"))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, people)
	}
}

func personCreateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var person model.Person
		if err := decodeJSON(r, &person); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		created, err := uc.People.Create(r.Context(), viewer, &person)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, created)
	}
}

func personUpdateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var person model.Person
		if err := decodeJSON(r, &person); err != nil {
			respondError(r.Context(), w, err)
			return
		}
		person.ID = types.PersonID(chi.URLParam(r, "personID"))

		updated, err := uc.People.Update(r.Context(), viewer, &person)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, updated)
	}
}

func personDeleteHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		if err := uc.People.Delete(r.Context(), viewer, types.PersonID(chi.URLParam(r, "personID"))); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}
