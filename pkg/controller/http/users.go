package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Visible  *bool  `json:"visible"` // omitted means shown in the team view
}

// userCreateHandler provisions a login credential together with its person
// profile. Master only.
func userCreateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := resolveViewer(r, uc.Auth)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		var req createUserRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		visible := true
		if req.Visible != nil {
			visible = *req.Visible
		}

		person, err := uc.Auth.ProvisionUser(r.Context(), viewer, req.Email, req.Password, req.FullName, req.Role, visible)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, person)
	}
}
