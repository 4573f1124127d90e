package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"karir-nusantara/internal/config"
	"karir-nusantara/internal/delivery/http/handler"
	"karir-nusantara/internal/delivery/http/middleware"
	"karir-nusantara/internal/delivery/http/routes"
	"karir-nusantara/internal/pkg/jwt"
	"karir-nusantara/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
	WS    *http.Server
	Hub   *ws.Hub
}

// New builds the HTTP surface over an initialised container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 2 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c.Logger)

	jwtSvc := jwt.NewHMACService(c.Config.JWT.AccessSecret, c.Config.JWT.AccessExpiresIn)
	reg := &routes.Registry{
		Health: handler.NewHealthHandler(
			map[string]handler.Pinger{"postgres": c.DB},
			map[string]handler.Pinger{"redis": c.Cache},
		),
		CV:              handler.NewCVHandler(c.CVQuality, c.CVDraft),
		Profile:         handler.NewProfileHandler(c.ProfileUC),
		Recommendations: handler.NewJobRecommendationHandler(c.Recommendations),
		Jobs:            handler.NewJobsHandler(c.JobsUC),
		Auth:            middleware.NewAuthMiddleware(jwtSvc).Middleware(),
	}
	reg.Register(f)

	wsAddr, _ := ListenAddr(c.Config.App.WSPort)
	srv := &http.Server{
		Addr:              wsAddr,
		Handler:           ws.NewHandler(c.Hub, c.Logger.Named("ws")).Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{Fiber: f, WS: srv, Hub: c.Hub}
}

func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(log.Named("http")).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log.Named("access")).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
