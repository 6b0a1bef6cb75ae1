package handler

import (
	"errors"

	"talentmate/internal/delivery/http/middleware"
	"talentmate/internal/pkg/response"
	"talentmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/count", h.Count)
	r.Post("/:id/read", h.MarkRead)
	r.Post("/read-all", h.MarkAllRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	limit := fiber.Query[int](c, "limit", 50)
	out, err := h.uc.List(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", map[string]any{"notifications": out})
}

func (h *NotificationHandler) Count(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	n, err := h.uc.CountUnread(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", map[string]any{"count": n})
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Context(), userID, id); err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	if err := h.uc.MarkAllRead(c.Context(), userID); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", nil)
}
