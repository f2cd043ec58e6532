package api

import (
	"net/http"
	"time"

	_ "github.com/vikramsomai/portfolio-skills-manager/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rs/cors"
	"github.com/vikramsomai/portfolio-skills-manager/internal/api/handlers"
	"github.com/vikramsomai/portfolio-skills-manager/internal/api/middleware"
	"github.com/vikramsomai/portfolio-skills-manager/internal/config"
	"github.com/vikramsomai/portfolio-skills-manager/internal/utils"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Skills   *handlers.SkillHandler
	Contacts *handlers.ContactHandler
}

func SetupRouter(cfg *config.Config, ac *middleware.AccessControl, h Handlers) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)
	startedAt := time.Now()

	// ---------- PUBLIC ROUTES ----------
	// Registered without a method so unmatched requests of every verb get
	// the JSON not-found envelope instead of the mux's plain-text reply.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" || r.Method != http.MethodGet {
			utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
				Success: false,
				Message: "Route not found",
			})
			return
		}
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Portfolio Skills Manager API with JWT Authentication",
			Data: map[string]any{
				"version": "2.0.0",
				"endpoints": map[string]string{
					"auth":     "/api/v1/auth",
					"skills":   "/api/v1/skills",
					"contacts": "/api/v1/contacts",
					"health":   "/api/health",
				},
			},
		})
	})

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Data: map[string]any{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"uptime":    time.Since(startedAt).String(),
			},
		})
	})

	mux.Handle("/docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)

	mux.HandleFunc("GET /api/v1/skills", h.Skills.List)
	mux.HandleFunc("GET /api/v1/skills/{id}", h.Skills.Get)

	mux.HandleFunc("POST /api/v1/contacts", h.Contacts.Create)
	// TODO: decide whether the contact listing should be admin-gated; it is
	// public today, unlike the skill writes.
	mux.HandleFunc("GET /api/v1/contacts", h.Contacts.List)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("GET /api/v1/auth/profile", ac.RequireAuth(http.HandlerFunc(h.Auth.Profile)))

	mux.Handle("POST /api/v1/skills", ac.RequireAdmin(http.HandlerFunc(h.Skills.Create)))
	mux.Handle("PUT /api/v1/skills/{id}", ac.RequireAdmin(http.HandlerFunc(h.Skills.Update)))
	mux.Handle("DELETE /api/v1/skills/{id}", ac.RequireAdmin(http.HandlerFunc(h.Skills.Delete)))

	handler := c.Handler(mux)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.Logger(handler)
	return handler
}
