package handler

import (
	"context"
	"time"

	"karir-nusantara/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the state of each dependency. Only
// required dependencies turn the status unhealthy.
type HealthHandler struct {
	required map[string]Pinger
	optional map[string]Pinger
}

func NewHealthHandler(required, optional map[string]Pinger) *HealthHandler {
	return &HealthHandler{required: required, optional: optional}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true
	for name, p := range h.required {
		if p == nil || p.Ping(ctx) != nil {
			checks[name] = "down"
			healthy = false
			continue
		}
		checks[name] = "up"
	}
	for name, p := range h.optional {
		if p == nil || p.Ping(ctx) != nil {
			checks[name] = "degraded"
			continue
		}
		checks[name] = "up"
	}

	status := fiber.StatusOK
	state := "ok"
	if !healthy {
		status = fiber.StatusServiceUnavailable
		state = "unhealthy"
	}
	return response.Success(c, status, state, map[string]any{"status": state, "checks": checks})
}
