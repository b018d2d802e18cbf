package http

import (
	"net/http"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/access"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/model/auth"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/utils/logging"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
)

const sessionCookieName = "controlpro_session"

// authMiddleware validates the session cookie and attaches the session
// principal to the request context. Requests without a valid session get 401.
func authMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			session, err := authUC.ValidateToken(r.Context(), cookie.Value)
			if err != nil {
				http.Error(w, "Invalid session", http.StatusUnauthorized)
				return
			}

			ctx := auth.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolveViewer derives the access identity of the authenticated request
func resolveViewer(r *http.Request, authUC *usecase.AuthUseCase) (access.Viewer, error) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		return access.Viewer{}, goerr.Wrap(usecase.ErrInvalidCredentials, "no session")
	}
	return authUC.Viewer(r.Context(), session)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
