package v1

import (
	"talentmate/internal/delivery/http/handler"
	"talentmate/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers bundles everything the v1 API surface needs. The auth
// middleware gates every group except /auth.
type Handlers struct {
	AuthMw *middleware.AuthMiddleware

	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Interview    *handler.InterviewHandler
	Schedule     *handler.ScheduleHandler
	Notification *handler.NotificationHandler
	Recruiter    *handler.RecruiterHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil || h.AuthMw == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	protected := r.Group("", h.AuthMw.Middleware())

	if h.User != nil {
		h.User.RegisterRoutes(protected.Group("/profile"))
	}
	if h.Interview != nil {
		h.Interview.RegisterRoutes(protected.Group("/interviews"))
	}
	if h.Schedule != nil {
		h.Schedule.RegisterRoutes(protected.Group("/schedule"), h.AuthMw)
	}
	if h.Notification != nil {
		h.Notification.RegisterRoutes(protected.Group("/notifications"))
	}
	if h.Recruiter != nil {
		h.Recruiter.RegisterRoutes(protected.Group("/recruiter", h.AuthMw.RequireRecruiter()))
	}
}
