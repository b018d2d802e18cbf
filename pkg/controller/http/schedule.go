package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
)

func scheduleHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		schedule, err := uc.Schedule.Timeline(r.Context(), viewer)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, schedule)
	}
}
