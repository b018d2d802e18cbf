package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
)

type reportResponse struct {
	Summary string `json:"summary"`
}

// reportHandler generates the executive narrative. LLM failures do not 5xx:
// the fixed degraded text comes back with a 200.
func reportHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		summary, err := uc.Report.Generate(r.Context(), viewer)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, reportResponse{Summary: summary})
	}
}

func dashboardHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		overview, err := uc.Dashboard.Overview(r.Context(), viewer)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, overview)
	}
}
