package handler

import (
	"errors"

	"talentmate/internal/delivery/http/middleware"
	"talentmate/internal/pkg/response"
	"talentmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	uc usecase.ScheduleUsecase
}

type requestInterviewRequest struct {
	SessionID     *uuid.UUID `json:"session_id"`
	PreferredDate string     `json:"preferred_date"`
	PreferredTime string     `json:"preferred_time"`
	Message       string     `json:"message"`
}

type manageRequestRequest struct {
	Action        string `json:"action"` // "approve" or "reject"
	Response      string `json:"response"`
	ScheduledDate string `json:"scheduled_date"`
}

type proposeInterviewRequest struct {
	CandidateID  uuid.UUID `json:"candidate_id"`
	ProposedDate string    `json:"proposed_date"`
	ProposedTime string    `json:"proposed_time"`
	Message      string    `json:"message"`
}

type respondInvitationRequest struct {
	Response        string `json:"response"` // "accept", "decline" or "alternative"
	AlternativeDate string `json:"alternative_date"`
	AlternativeTime string `json:"alternative_time"`
	Message         string `json:"message"`
}

type acceptAlternativeRequest struct {
	FinalDate string `json:"final_date"`
	FinalTime string `json:"final_time"`
}

func NewScheduleHandler(uc usecase.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

func (h *ScheduleHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/", h.Request)
	r.Get("/", h.ListOwn)
	r.Post("/:id/respond", h.Respond)

	recruiter := auth.RequireRecruiter()
	r.Post("/propose", h.Propose, recruiter)
	r.Post("/:id/manage", h.Manage, recruiter)
	r.Post("/:id/accept-alternative", h.AcceptAlternative, recruiter)
	r.Post("/:id/reject-alternative", h.RejectAlternative, recruiter)
}

func (h *ScheduleHandler) Request(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req requestInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.RequestInterview(c.Context(), usecase.RequestInterviewInput{
		UserID:        userID,
		SessionID:     req.SessionID,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	})
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Interview request submitted", out)
}

func (h *ScheduleHandler) ListOwn(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	out, err := h.uc.ListForUser(c.Context(), userID)
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusOK, "", map[string]any{"interview_requests": out})
}

func (h *ScheduleHandler) Manage(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req manageRequestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Action != "approve" && req.Action != "reject" {
		return middleware.NewAppError(fiber.StatusBadRequest, "action must be approve or reject", nil, nil)
	}

	err = h.uc.ManageRequest(c.Context(), usecase.ManageRequestInput{
		RecruiterID:   recruiterID,
		RequestID:     requestID,
		Approve:       req.Action == "approve",
		Response:      req.Response,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusOK, "Interview request updated", nil)
}

func (h *ScheduleHandler) Propose(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req proposeInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.ProposeInterview(c.Context(), usecase.ProposeInterviewInput{
		RecruiterID:  recruiterID,
		CandidateID:  req.CandidateID,
		ProposedDate: req.ProposedDate,
		ProposedTime: req.ProposedTime,
		Message:      req.Message,
	})
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Interview proposed", out)
}

func (h *ScheduleHandler) Respond(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req respondInvitationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.RespondInvitation(c.Context(), usecase.RespondInvitationInput{
		UserID:          userID,
		RequestID:       requestID,
		Response:        req.Response,
		AlternativeDate: req.AlternativeDate,
		AlternativeTime: req.AlternativeTime,
		Message:         req.Message,
	})
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusOK, "Response recorded", nil)
}

func (h *ScheduleHandler) AcceptAlternative(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req acceptAlternativeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err = h.uc.AcceptAlternative(c.Context(), usecase.AcceptAlternativeInput{
		RecruiterID: recruiterID,
		RequestID:   requestID,
		FinalDate:   req.FinalDate,
		FinalTime:   req.FinalTime,
	})
	if err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusOK, "Alternative accepted", nil)
}

func (h *ScheduleHandler) RejectAlternative(c fiber.Ctx) error {
	recruiterID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RejectAlternative(c.Context(), recruiterID, requestID); err != nil {
		return mapScheduleError(err)
	}
	return response.Success(c, fiber.StatusOK, "Alternative rejected", nil)
}

func mapScheduleError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Interview request not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidResponse):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid response type", nil, err)
	}
	return mapUsecaseError(err)
}
