package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/http/calendar"
	"github.com/MrJamesThe3rd/tempo/internal/http/clients"
	"github.com/MrJamesThe3rd/tempo/internal/http/company"
	"github.com/MrJamesThe3rd/tempo/internal/http/invoices"
	"github.com/MrJamesThe3rd/tempo/internal/http/profile"
)

func New(
	issuer *auth.Issuer,
	allowedOrigins []string,
	profileV1 *profile.Handler,
	companyV1 *company.Handler,
	calendarV1 *calendar.Handler,
	clientsV1 *clients.Handler,
	invoicesV1 *invoices.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/calendar", func(r chi.Router) {
			calendarV1.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(issuer.Middleware)
				calendarV1.Routes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(issuer.Middleware)

			r.Route("/profile", profileV1.Routes)
			r.Route("/companies", companyV1.CompanyRoutes)

			r.Route("/team", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				companyV1.TeamRoutes(r)
			})

			r.Route("/clients", clientsV1.Routes)

			r.Route("/invoices", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				invoicesV1.Routes(r)
			})
		})
	})

	return router
}
