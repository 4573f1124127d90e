package routes

import (
	"karir-nusantara/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health          *handler.HealthHandler
	CV              *handler.CVHandler
	Profile         *handler.ProfileHandler
	Recommendations *handler.JobRecommendationHandler
	Jobs            *handler.JobsHandler

	// Auth guards the per-user routes.
	Auth fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api/v1")

	r.CV.RegisterRoutes(v1, r.Auth)
	r.Profile.RegisterRoutes(v1, r.Auth)
	r.Recommendations.RegisterRoutes(v1, r.Auth)
	r.Jobs.RegisterRoutes(v1, r.Auth)
}
