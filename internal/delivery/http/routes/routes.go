package routes

import (
	"talentmate/internal/delivery/http/handler"
	v1 "talentmate/internal/delivery/http/routes/v1"
	"talentmate/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	api      v1.Handlers
	notifyWS *ws.Handler
}

func NewRegistry(api v1.Handlers, notifyWS *ws.Handler) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(),
		api:      api,
		notifyWS: notifyWS,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.api)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.notifyWS == nil {
		return
	}
	app.Get("/ws/notifications", r.notifyWS.HandleNotificationsWS)
}
