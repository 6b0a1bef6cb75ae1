package handler

import (
	"errors"

	"talentmate/internal/delivery/http/middleware"
	"talentmate/internal/domain/user"
	"talentmate/internal/pkg/response"
	"talentmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	Phone           *string `json:"phone"`
	Company         *string `json:"company"`
	Position        *string `json:"position"`
	ExperienceYears *int    `json:"experience_years"`
	Skills          *string `json:"skills"`
	Bio             *string `json:"bio"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetProfile)
	r.Put("/", h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Profile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", view)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, user.ProfileUpdate{
		Phone:           req.Phone,
		Company:         req.Company,
		Position:        req.Position,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		Bio:             req.Bio,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", usr)
}
