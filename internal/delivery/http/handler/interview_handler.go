package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"talentmate/internal/delivery/http/middleware"
	"talentmate/internal/pkg/response"
	"talentmate/internal/report"
	"talentmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc            usecase.InterviewUsecase
	reports       *report.Generator
	maxResumeSize int64
}

type submitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

func NewInterviewHandler(uc usecase.InterviewUsecase, reports *report.Generator, maxResumeSize int64) *InterviewHandler {
	return &InterviewHandler{uc: uc, reports: reports, maxResumeSize: maxResumeSize}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Start)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/:id/answers", h.SubmitAnswer)
	r.Get("/:id/results", h.Results)
	r.Get("/:id/report", h.Report)
}

// Start accepts a multipart form with a resume file and the target
// job role, and opens a new interview session.
func (h *InterviewHandler) Start(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	jobRole := strings.TrimSpace(c.FormValue("job_role"))
	if jobRole == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "job_role is required", nil, nil)
	}

	var (
		filename string
		data     []byte
	)
	if fh, err := c.FormFile("resume"); err == nil && fh != nil {
		if h.maxResumeSize > 0 && fh.Size > h.maxResumeSize {
			return middleware.NewAppError(fiber.StatusBadRequest, "Resume file too large", nil, nil)
		}
		f, err := fh.Open()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume file", nil, err)
		}
		data, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Could not read resume file", nil, err)
		}
		filename = fh.Filename
	}

	out, err := h.uc.StartSession(c.Context(), usecase.StartSessionInput{
		UserID:   userID,
		JobRole:  jobRole,
		Filename: filename,
		Resume:   data,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyJobRole) {
			return middleware.NewAppError(fiber.StatusBadRequest, "job_role is required", nil, err)
		}
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "", out)
}

func (h *InterviewHandler) List(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "", map[string]any{"sessions": sessions})
}

func (h *InterviewHandler) Get(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	s, err := h.uc.GetSession(c.Context(), userID, sessionID)
	if err != nil {
		return mapInterviewError(err)
	}
	return response.Success(c, fiber.StatusOK, "", s)
}

func (h *InterviewHandler) SubmitAnswer(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req submitAnswerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.QuestionID) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "question_id is required", nil, nil)
	}

	out, err := h.uc.SubmitAnswer(c.Context(), userID, sessionID, req.QuestionID, req.Answer)
	if err != nil {
		return mapInterviewError(err)
	}
	return response.Success(c, fiber.StatusOK, "", out)
}

func (h *InterviewHandler) Results(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.uc.Results(c.Context(), userID, sessionID)
	if err != nil {
		return mapInterviewError(err)
	}
	return response.Success(c, fiber.StatusOK, "", res)
}

func (h *InterviewHandler) Report(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	sessionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if h.reports == nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Report generation unavailable", nil, nil)
	}

	s, err := h.uc.GetSession(c.Context(), userID, sessionID)
	if err != nil {
		return mapInterviewError(err)
	}
	res, err := h.uc.Results(c.Context(), userID, sessionID)
	if err != nil {
		return mapInterviewError(err)
	}

	pdf, err := h.reports.PDF(c.Context(), s, res)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="interview_report_%s.pdf"`, sessionID))
	return c.Send(pdf)
}

func mapInterviewError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Session not found", nil, err)
	case errors.Is(err, usecase.ErrQuestionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Question not found", nil, err)
	}
	return mapUsecaseError(err)
}
