package handler

import (
	"errors"
	"strings"

	"talentmate/internal/delivery/http/middleware"
	"talentmate/internal/jobimport"
	"talentmate/internal/pkg/response"
	"talentmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecruiterHandler struct {
	users    usecase.UserUsecase
	schedule usecase.ScheduleUsecase
	importer *jobimport.Importer
}

type importJobRequest struct {
	URL string `json:"url"`
}

func NewRecruiterHandler(users usecase.UserUsecase, schedule usecase.ScheduleUsecase, importer *jobimport.Importer) *RecruiterHandler {
	return &RecruiterHandler{users: users, schedule: schedule, importer: importer}
}

func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard", h.Dashboard)
	r.Get("/candidates/:id/requests", h.CandidateRequests)
	r.Post("/jobs/import", h.ImportJob)
}

func (h *RecruiterHandler) Dashboard(c fiber.Ctx) error {
	dash, err := h.users.RecruiterDashboard(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", dash)
}

func (h *RecruiterHandler) CandidateRequests(c fiber.Ctx) error {
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	out, err := h.schedule.ListForCandidate(c.Context(), candidateID)
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusOK, "", map[string]any{"interview_requests": out})
}

func (h *RecruiterHandler) ImportJob(c fiber.Ctx) error {
	if h.importer == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Job import unavailable", nil, nil)
	}

	var req importJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.URL) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "url is required", nil, nil)
	}

	posting, err := h.importer.Import(req.URL)
	if err != nil {
		switch {
		case errors.Is(err, jobimport.ErrInvalidURL):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job posting url", nil, err)
		case errors.Is(err, jobimport.ErrFetch):
			return middleware.NewAppError(fiber.StatusBadGateway, "Could not fetch job posting", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, "", posting)
}
