package http

import (
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authLoginHandler(uc.Auth))
		r.Post("/auth/logout", authLogoutHandler())

		// Everything below requires a valid session
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(uc.Auth))

			r.Get("/auth/me", authMeHandler(uc.Auth))

			r.Route("/audits", func(r chi.Router) {
				r.Get("/", auditListHandler(uc))
				r.Post("/", auditCreateHandler(uc))
				r.Get("/{auditID}", auditGetHandler(uc))
				r.Put("/{auditID}", auditUpdateHandler(uc))
				r.Patch("/{auditID}/phases/{phaseID}", phaseUpdateHandler(uc))
				r.Patch("/{auditID}/phases/{phaseID}/status", phaseStatusHandler(uc))
				r.Patch("/{auditID}/tasks/{taskID}", taskUpdateHandler(uc))
			})

			r.Route("/risks", func(r chi.Router) {
				r.Get("/", riskListHandler(uc))
				r.Post("/", riskCreateHandler(uc))
				r.Put("/{riskID}", riskUpdateHandler(uc))
				r.Delete("/{riskID}", riskDeleteHandler(uc))
			})

			r.Route("/criteria", func(r chi.Router) {
				r.Get("/", criterionListHandler(uc))
				r.Post("/", criterionCreateHandler(uc))
				r.Put("/{criterionID}", criterionUpdateHandler(uc))
			})

			r.Route("/planner", func(r chi.Router) {
				r.Get("/", plannerListHandler(uc))
				r.Post("/", plannerCreateHandler(uc))
				r.Put("/{entryID}", plannerUpdateHandler(uc))
				r.Delete("/{entryID}", plannerDeleteHandler(uc))
			})

			r.Route("/areas", func(r chi.Router) {
				r.Get("/", areaListHandler(uc))
				r.Post("/", areaAddHandler(uc))
			})

			r.Route("/people", func(r chi.Router) {
				r.Get("/", personListHandler(uc))
				r.Post("/", personCreateHandler(uc))
				r.Put("/{personID}", personUpdateHandler(uc))
				r.Delete("/{personID}", personDeleteHandler(uc))
			})

			r.Post("/admin/users", userCreateHandler(uc))

			r.Post("/report", reportHandler(uc))
			r.Get("/dashboard", dashboardHandler(uc))
			r.Get("/schedule", scheduleHandler(uc))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
