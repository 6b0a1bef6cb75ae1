package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"talentmate/internal/delivery/http/handler"
	"talentmate/internal/delivery/http/middleware"
	v1 "talentmate/internal/delivery/http/routes/v1"
	"talentmate/internal/domain/schedule"
	"talentmate/internal/domain/session"
	"talentmate/internal/domain/user"
	"talentmate/internal/pkg/jwt"
	"talentmate/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubInterviewUC struct{}

func (stubInterviewUC) StartSession(ctx context.Context, in usecase.StartSessionInput) (*usecase.StartSessionOutput, error) {
	return nil, usecase.ErrInternal
}

func (stubInterviewUC) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*session.Session, error) {
	return nil, usecase.ErrSessionNotFound
}

func (stubInterviewUC) SubmitAnswer(ctx context.Context, userID, sessionID uuid.UUID, questionID, answer string) (*usecase.AnswerOutput, error) {
	return nil, usecase.ErrSessionNotFound
}

func (stubInterviewUC) Results(ctx context.Context, userID, sessionID uuid.UUID) (*usecase.SessionResults, error) {
	return nil, usecase.ErrSessionNotFound
}

func (stubInterviewUC) ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	return nil, nil
}

type stubUserUC struct{}

func (stubUserUC) Profile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	return nil, usecase.ErrUserNotFound
}

func (stubUserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, upd user.ProfileUpdate) (*user.User, error) {
	return nil, usecase.ErrUserNotFound
}

func (stubUserUC) RecruiterDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	return &usecase.Dashboard{
		Candidates:      []user.CandidateSummary{},
		PendingRequests: []schedule.PendingRequest{},
	}, nil
}

type stubScheduleUC struct{}

func (stubScheduleUC) RequestInterview(ctx context.Context, in usecase.RequestInterviewInput) (*schedule.Request, error) {
	return nil, usecase.ErrInternal
}

func (stubScheduleUC) ManageRequest(ctx context.Context, in usecase.ManageRequestInput) error {
	return usecase.ErrRequestNotFound
}

func (stubScheduleUC) ProposeInterview(ctx context.Context, in usecase.ProposeInterviewInput) (*schedule.Request, error) {
	return nil, usecase.ErrCandidateNotFound
}

func (stubScheduleUC) RespondInvitation(ctx context.Context, in usecase.RespondInvitationInput) error {
	return usecase.ErrRequestNotFound
}

func (stubScheduleUC) AcceptAlternative(ctx context.Context, in usecase.AcceptAlternativeInput) error {
	return usecase.ErrRequestNotFound
}

func (stubScheduleUC) RejectAlternative(ctx context.Context, recruiterID, requestID uuid.UUID) error {
	return usecase.ErrRequestNotFound
}

func (stubScheduleUC) ListForUser(ctx context.Context, userID uuid.UUID) ([]schedule.Request, error) {
	return []schedule.Request{}, nil
}

func (stubScheduleUC) ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]schedule.Request, error) {
	return []schedule.Request{}, nil
}

func (stubScheduleUC) ListPending(ctx context.Context) ([]schedule.PendingRequest, error) {
	return []schedule.PendingRequest{}, nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, jwtSvc jwt.Service) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())

	v1.Register(app.Group("/api/v1"), v1.Handlers{
		AuthMw:    middleware.NewAuthMiddleware(jwtSvc),
		Interview: handler.NewInterviewHandler(stubInterviewUC{}, nil, 1<<20),
		Recruiter: handler.NewRecruiterHandler(stubUserUC{}, stubScheduleUC{}, nil),
	})
	return app
}

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("test-access-secret", "test-refresh-secret", time.Hour, time.Hour)
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string) (*http.Response, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	res.Body.Close()
	return res, env
}

func TestRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t, newTestJWT())

	res, env := doRequest(t, app, "GET", "/api/v1/interviews/"+uuid.NewString(), "")
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}
	if env.Status != fiber.StatusUnauthorized || env.Message != "Unauthorized" {
		t.Errorf("envelope = %d %q", env.Status, env.Message)
	}
}

func TestSessionNotFoundEnvelope(t *testing.T) {
	jwtSvc := newTestJWT()
	app := newTestApp(t, jwtSvc)

	token, err := jwtSvc.GenerateAccessToken(uuid.New(), "candidate@example.com", user.RoleUser)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	res, env := doRequest(t, app, "GET", "/api/v1/interviews/"+uuid.NewString(), token)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
	if env.Status != fiber.StatusNotFound || env.Message != "Session not found" {
		t.Errorf("envelope = %d %q", env.Status, env.Message)
	}
}

func TestRecruiterGate(t *testing.T) {
	jwtSvc := newTestJWT()
	app := newTestApp(t, jwtSvc)

	candidateToken, err := jwtSvc.GenerateAccessToken(uuid.New(), "candidate@example.com", user.RoleUser)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	recruiterToken, err := jwtSvc.GenerateAccessToken(uuid.New(), "recruiter@example.com", user.RoleRecruiter)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	res, env := doRequest(t, app, "GET", "/api/v1/recruiter/dashboard", candidateToken)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("candidate status = %d, want 403", res.StatusCode)
	}
	if env.Message != "Recruiter privileges required" {
		t.Errorf("candidate message = %q", env.Message)
	}

	res, env = doRequest(t, app, "GET", "/api/v1/recruiter/dashboard", recruiterToken)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("recruiter status = %d, want 200", res.StatusCode)
	}
	if len(env.Data) == 0 {
		t.Error("recruiter dashboard returned no data")
	}
}
