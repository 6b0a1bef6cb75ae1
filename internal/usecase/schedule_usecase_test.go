package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentmate/internal/domain/notification"
	"talentmate/internal/domain/schedule"
	"talentmate/internal/domain/user"

	"github.com/google/uuid"
)

type fakeRequestRepo struct {
	requests map[uuid.UUID]*schedule.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[uuid.UUID]*schedule.Request{}}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *schedule.Request) error {
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Request, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, req *schedule.Request) error {
	if _, ok := r.requests[req.ID]; !ok {
		return schedule.ErrNotFound
	}
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]schedule.Request, error) {
	out := make([]schedule.Request, 0)
	for _, req := range r.requests {
		if req.UserID == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListPending(ctx context.Context) ([]schedule.PendingRequest, error) {
	out := make([]schedule.PendingRequest, 0)
	for _, req := range r.requests {
		if req.Status == schedule.StatusPending {
			out = append(out, schedule.PendingRequest{Request: *req})
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*user.User{}}
}

func (r *fakeUserRepo) add(u *user.User) *user.User {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
	}
	r.add(u)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListCandidates(ctx context.Context) ([]user.CandidateSummary, error) {
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

type fakeMailer struct {
	sent int
}

func (m *fakeMailer) SendDecision(ctx context.Context, to, candidateName string, approved bool, dateInfo, recruiterResponse string) {
	m.sent++
}

func newTestScheduleUsecase(t *testing.T) (*Schedule, *fakeRequestRepo, *fakeUserRepo, *fakeNotifier, *fakeMailer) {
	t.Helper()
	requests := newFakeRequestRepo()
	users := newFakeUserRepo()
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	return NewScheduleUsecase(requests, users, notifier, mailer, nil), requests, users, notifier, mailer
}

func TestProposeAndAcceptInvitation(t *testing.T) {
	uc, repo, users, notifier, _ := newTestScheduleUsecase(t)
	candidate := users.add(&user.User{Username: "cand", Email: "cand@example.com", Role: user.RoleUser})
	recruiterID := uuid.New()

	req, err := uc.ProposeInterview(context.Background(), ProposeInterviewInput{
		RecruiterID:  recruiterID,
		CandidateID:  candidate.ID,
		ProposedDate: "2026-09-10",
		ProposedTime: "14:00",
		Message:      "Looking forward to speaking with you",
	})
	if err != nil {
		t.Fatalf("ProposeInterview: %v", err)
	}
	if req.Status != schedule.StatusRecruiterProposed {
		t.Errorf("Status = %q", req.Status)
	}
	if req.WorkflowStatus != schedule.WorkflowUserResponsePending {
		t.Errorf("WorkflowStatus = %q", req.WorkflowStatus)
	}
	if len(notifier.created) != 1 || notifier.created[0].Type != notification.TypeInterviewInvitation {
		t.Fatalf("invitation notification missing: %+v", notifier.created)
	}

	err = uc.RespondInvitation(context.Background(), RespondInvitationInput{
		UserID:    candidate.ID,
		RequestID: req.ID,
		Response:  "accept",
	})
	if err != nil {
		t.Fatalf("RespondInvitation: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), req.ID)
	if stored.Status != schedule.StatusApproved {
		t.Errorf("Status = %q, want approved", stored.Status)
	}
	if stored.WorkflowStatus != schedule.WorkflowConfirmed {
		t.Errorf("WorkflowStatus = %q, want confirmed", stored.WorkflowStatus)
	}
	if stored.FinalDate != "2026-09-10" || stored.FinalTime != "14:00" {
		t.Errorf("final slot = %s %s", stored.FinalDate, stored.FinalTime)
	}

	last := notifier.created[len(notifier.created)-1]
	if last.Type != notification.TypeInterviewAccepted || last.UserID != recruiterID {
		t.Errorf("acceptance notification = %+v", last)
	}
}

func TestRespondInvitationDecline(t *testing.T) {
	uc, repo, users, notifier, _ := newTestScheduleUsecase(t)
	candidate := users.add(&user.User{Username: "cand", Email: "cand@example.com"})
	recruiterID := uuid.New()

	req, err := uc.ProposeInterview(context.Background(), ProposeInterviewInput{
		RecruiterID:  recruiterID,
		CandidateID:  candidate.ID,
		ProposedDate: "2026-09-10",
		ProposedTime: "14:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.RespondInvitation(context.Background(), RespondInvitationInput{
		UserID:    candidate.ID,
		RequestID: req.ID,
		Response:  "decline",
	}); err != nil {
		t.Fatalf("RespondInvitation: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), req.ID)
	if stored.Status != schedule.StatusRejected || stored.WorkflowStatus != schedule.WorkflowDeclined {
		t.Errorf("status = %s/%s", stored.Status, stored.WorkflowStatus)
	}
	last := notifier.created[len(notifier.created)-1]
	if last.Type != notification.TypeInterviewDeclined {
		t.Errorf("notification type = %q", last.Type)
	}
}

func TestAlternativeFlow(t *testing.T) {
	uc, repo, users, notifier, _ := newTestScheduleUsecase(t)
	candidate := users.add(&user.User{Username: "cand", Email: "cand@example.com"})
	recruiterID := uuid.New()

	req, err := uc.ProposeInterview(context.Background(), ProposeInterviewInput{
		RecruiterID:  recruiterID,
		CandidateID:  candidate.ID,
		ProposedDate: "2026-09-10",
		ProposedTime: "14:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	err = uc.RespondInvitation(context.Background(), RespondInvitationInput{
		UserID:          candidate.ID,
		RequestID:       req.ID,
		Response:        "alternative",
		AlternativeDate: "2026-09-12",
		AlternativeTime: "10:00",
		Message:         "Morning works better",
	})
	if err != nil {
		t.Fatalf("RespondInvitation: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), req.ID)
	if stored.WorkflowStatus != schedule.WorkflowAwaitingRecruiterResponse {
		t.Errorf("WorkflowStatus = %q", stored.WorkflowStatus)
	}
	if stored.UserProposedDate != "2026-09-12" {
		t.Errorf("UserProposedDate = %q", stored.UserProposedDate)
	}

	err = uc.AcceptAlternative(context.Background(), AcceptAlternativeInput{
		RecruiterID: recruiterID,
		RequestID:   req.ID,
		FinalDate:   "2026-09-12",
		FinalTime:   "10:00",
	})
	if err != nil {
		t.Fatalf("AcceptAlternative: %v", err)
	}

	stored, _ = repo.FindByID(context.Background(), req.ID)
	if stored.Status != schedule.StatusApproved || stored.WorkflowStatus != schedule.WorkflowConfirmed {
		t.Errorf("status = %s/%s", stored.Status, stored.WorkflowStatus)
	}
	if stored.FinalDate != "2026-09-12" || stored.FinalTime != "10:00" {
		t.Errorf("final slot = %s %s", stored.FinalDate, stored.FinalTime)
	}

	last := notifier.created[len(notifier.created)-1]
	if last.Type != notification.TypeInterviewScheduled || last.UserID != candidate.ID {
		t.Errorf("confirmation notification = %+v", last)
	}
}

func TestRejectAlternativeByWrongRecruiter(t *testing.T) {
	uc, _, users, _, _ := newTestScheduleUsecase(t)
	candidate := users.add(&user.User{Username: "cand", Email: "cand@example.com"})

	req, err := uc.ProposeInterview(context.Background(), ProposeInterviewInput{
		RecruiterID:  uuid.New(),
		CandidateID:  candidate.ID,
		ProposedDate: "2026-09-10",
		ProposedTime: "14:00",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.RejectAlternative(context.Background(), uuid.New(), req.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestManageRequestSendsMail(t *testing.T) {
	uc, repo, users, _, mailer := newTestScheduleUsecase(t)
	candidate := users.add(&user.User{Username: "cand", Email: "cand@example.com", FullName: "Cand Example"})

	req, err := uc.RequestInterview(context.Background(), RequestInterviewInput{
		UserID:        candidate.ID,
		PreferredDate: "2026-09-15",
		PreferredTime: "11:00",
		Message:       "Please consider my request",
	})
	if err != nil {
		t.Fatalf("RequestInterview: %v", err)
	}
	if req.Status != schedule.StatusPending {
		t.Errorf("Status = %q", req.Status)
	}

	err = uc.ManageRequest(context.Background(), ManageRequestInput{
		RecruiterID:   uuid.New(),
		RequestID:     req.ID,
		Approve:       true,
		Response:      "See you then",
		ScheduledDate: "2026-09-16",
	})
	if err != nil {
		t.Fatalf("ManageRequest: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), req.ID)
	if stored.Status != schedule.StatusApproved {
		t.Errorf("Status = %q", stored.Status)
	}
	if stored.ScheduledDate != "2026-09-16" {
		t.Errorf("ScheduledDate = %q", stored.ScheduledDate)
	}
	if mailer.sent != 1 {
		t.Errorf("mails sent = %d, want 1", mailer.sent)
	}
}

func TestRespondInvitationUnknownRequest(t *testing.T) {
	uc, _, _, _, _ := newTestScheduleUsecase(t)
	err := uc.RespondInvitation(context.Background(), RespondInvitationInput{
		UserID:    uuid.New(),
		RequestID: uuid.New(),
		Response:  "accept",
	})
	if !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("err = %v, want ErrRequestNotFound", err)
	}
}
