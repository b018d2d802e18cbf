package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model/auth"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type meResponse struct {
	Sub     string        `json:"sub"`
	Email   string        `json:"email"`
	Name    string        `json:"name"`
	Role    string        `json:"role"`
	Profile *model.Person `json:"profile,omitempty"`
}

// authLoginHandler verifies the credentials and sets the session cookie
func authLoginHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		session, err := authUC.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		token, expiresAt, err := authUC.IssueToken(session)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		profile, role, err := authUC.Identify(r.Context(), session)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, meResponse{
			Sub:     session.Sub,
			Email:   session.Email,
			Name:    session.Name,
			Role:    role.String(),
			Profile: profile,
		})
	}
}

// authLogoutHandler clears the session cookie. Tokens are stateless, so
// logout is purely client-side.
func authLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})

		respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
	}
}

// authMeHandler returns the session principal with its linked profile and
// effective role
func authMeHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := auth.SessionFromContext(r.Context())
		if session == nil {
			respondError(r.Context(), w, goerr.Wrap(usecase.ErrInvalidCredentials, "no session"))
			return
		}

		profile, role, err := authUC.Identify(r.Context(), session)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, meResponse{
			Sub:     session.Sub,
			Email:   session.Email,
			Name:    session.Name,
			Role:    role.String(),
			Profile: profile,
		})
	}
}
