package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"talentmate/internal/domain/notification"
	"talentmate/internal/domain/schedule"
	"talentmate/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errors.New("interview request not found")
	ErrInvalidResponse   = errors.New("invalid response type")
	ErrMissingFields     = errors.New("missing required fields")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// DecisionMailer sends the approval/rejection email for a candidate
// request. The default implementation only logs the message.
type DecisionMailer interface {
	SendDecision(ctx context.Context, to, candidateName string, approved bool, dateInfo, recruiterResponse string)
}

type RequestInterviewInput struct {
	UserID        uuid.UUID
	SessionID     *uuid.UUID
	PreferredDate string
	PreferredTime string
	Message       string
}

type ManageRequestInput struct {
	RecruiterID   uuid.UUID
	RequestID     uuid.UUID
	Approve       bool
	Response      string
	ScheduledDate string
}

type ProposeInterviewInput struct {
	RecruiterID  uuid.UUID
	CandidateID  uuid.UUID
	ProposedDate string
	ProposedTime string
	Message      string
}

type RespondInvitationInput struct {
	UserID          uuid.UUID
	RequestID       uuid.UUID
	Response        string // "accept", "decline" or "alternative"
	AlternativeDate string
	AlternativeTime string
	Message         string
}

type AcceptAlternativeInput struct {
	RecruiterID uuid.UUID
	RequestID   uuid.UUID
	FinalDate   string
	FinalTime   string
}

type ScheduleUsecase interface {
	RequestInterview(ctx context.Context, in RequestInterviewInput) (*schedule.Request, error)
	ManageRequest(ctx context.Context, in ManageRequestInput) error
	ProposeInterview(ctx context.Context, in ProposeInterviewInput) (*schedule.Request, error)
	RespondInvitation(ctx context.Context, in RespondInvitationInput) error
	AcceptAlternative(ctx context.Context, in AcceptAlternativeInput) error
	RejectAlternative(ctx context.Context, recruiterID, requestID uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]schedule.Request, error)
	ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]schedule.Request, error)
	ListPending(ctx context.Context) ([]schedule.PendingRequest, error)
}

type Schedule struct {
	requests schedule.Repository
	users    user.Repository
	notifier NotificationCreator
	mailer   DecisionMailer
	logger   *log.Logger
}

func NewScheduleUsecase(
	requests schedule.Repository,
	users user.Repository,
	notifier NotificationCreator,
	mailer DecisionMailer,
	logger *log.Logger,
) *Schedule {
	if logger == nil {
		logger = log.Default()
	}
	return &Schedule{requests: requests, users: users, notifier: notifier, mailer: mailer, logger: logger}
}

func (u *Schedule) RequestInterview(ctx context.Context, in RequestInterviewInput) (*schedule.Request, error) {
	if in.UserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if in.PreferredDate == "" || in.PreferredTime == "" {
		return nil, ErrMissingFields
	}

	req := &schedule.Request{
		UserID:        in.UserID,
		SessionID:     in.SessionID,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Message:       in.Message,
		Status:        schedule.StatusPending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, ErrInternal
	}
	return req, nil
}

func (u *Schedule) ManageRequest(ctx context.Context, in ManageRequestInput) error {
	req, err := u.findRequest(ctx, in.RequestID)
	if err != nil {
		return err
	}

	req.RecruiterID = &in.RecruiterID
	req.RecruiterResponse = in.Response
	if in.Approve {
		req.Status = schedule.StatusApproved
		req.ScheduledDate = in.ScheduledDate
	} else {
		req.Status = schedule.StatusRejected
	}

	if err := u.requests.Update(ctx, req); err != nil {
		return ErrInternal
	}

	u.sendDecisionMail(ctx, req, in.Approve)
	return nil
}

func (u *Schedule) ProposeInterview(ctx context.Context, in ProposeInterviewInput) (*schedule.Request, error) {
	if in.CandidateID == uuid.Nil || in.ProposedDate == "" || in.ProposedTime == "" {
		return nil, ErrMissingFields
	}

	if _, err := u.users.FindByID(ctx, in.CandidateID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	req := &schedule.Request{
		UserID:                in.CandidateID,
		RecruiterID:           &in.RecruiterID,
		RecruiterResponse:     in.Message,
		RecruiterProposedDate: in.ProposedDate,
		RecruiterProposedTime: in.ProposedTime,
		Status:                schedule.StatusRecruiterProposed,
		WorkflowStatus:        schedule.WorkflowUserResponsePending,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, ErrInternal
	}

	u.notify(ctx, in.CandidateID, notification.TypeInterviewInvitation, "Interview Invitation",
		fmt.Sprintf("You have been invited for an interview on %s at %s. Please respond to confirm or propose an alternative.", in.ProposedDate, in.ProposedTime),
		map[string]any{
			"request_id":        req.ID.String(),
			"proposed_date":     in.ProposedDate,
			"proposed_time":     in.ProposedTime,
			"recruiter_message": in.Message,
		})

	return req, nil
}

func (u *Schedule) RespondInvitation(ctx context.Context, in RespondInvitationInput) error {
	req, err := u.findRequest(ctx, in.RequestID)
	if err != nil {
		return err
	}
	if req.UserID != in.UserID {
		return ErrForbidden
	}
	if req.RecruiterID == nil {
		return ErrInvalidResponse
	}
	recruiterID := *req.RecruiterID

	switch in.Response {
	case "accept":
		req.UserResponse = schedule.ResponseAccepted
		req.FinalDate = req.RecruiterProposedDate
		req.FinalTime = req.RecruiterProposedTime
		req.WorkflowStatus = schedule.WorkflowConfirmed
		req.Status = schedule.StatusApproved
		if err := u.requests.Update(ctx, req); err != nil {
			return ErrInternal
		}
		u.notify(ctx, recruiterID, notification.TypeInterviewAccepted, "Interview Accepted",
			fmt.Sprintf("Your interview proposal for %s at %s has been accepted.", req.RecruiterProposedDate, req.RecruiterProposedTime),
			map[string]any{"request_id": req.ID.String(), "final_date": req.FinalDate, "final_time": req.FinalTime})
		return nil

	case "decline":
		req.UserResponse = schedule.ResponseDeclined
		req.WorkflowStatus = schedule.WorkflowDeclined
		req.Status = schedule.StatusRejected
		if err := u.requests.Update(ctx, req); err != nil {
			return ErrInternal
		}
		u.notify(ctx, recruiterID, notification.TypeInterviewDeclined, "Interview Declined",
			fmt.Sprintf("Your interview proposal for %s at %s has been declined.", req.RecruiterProposedDate, req.RecruiterProposedTime),
			map[string]any{"request_id": req.ID.String()})
		return nil

	case "alternative":
		if in.AlternativeDate == "" || in.AlternativeTime == "" {
			return ErrMissingFields
		}
		req.UserResponse = schedule.ResponseAlternativeProposed
		req.UserProposedDate = in.AlternativeDate
		req.UserProposedTime = in.AlternativeTime
		req.Message = in.Message
		req.WorkflowStatus = schedule.WorkflowAwaitingRecruiterResponse
		if err := u.requests.Update(ctx, req); err != nil {
			return ErrInternal
		}
		u.notify(ctx, recruiterID, notification.TypeInterviewAlternative, "Alternative Date Proposed",
			fmt.Sprintf("The candidate has proposed an alternative interview time: %s at %s.", in.AlternativeDate, in.AlternativeTime),
			map[string]any{
				"request_id":       req.ID.String(),
				"alternative_date": in.AlternativeDate,
				"alternative_time": in.AlternativeTime,
				"user_message":     in.Message,
			})
		return nil
	}

	return ErrInvalidResponse
}

func (u *Schedule) AcceptAlternative(ctx context.Context, in AcceptAlternativeInput) error {
	if in.FinalDate == "" || in.FinalTime == "" {
		return ErrMissingFields
	}

	req, err := u.findRequest(ctx, in.RequestID)
	if err != nil {
		return err
	}
	if req.RecruiterID == nil || *req.RecruiterID != in.RecruiterID {
		return ErrForbidden
	}

	req.Status = schedule.StatusApproved
	req.FinalDate = in.FinalDate
	req.FinalTime = in.FinalTime
	req.WorkflowStatus = schedule.WorkflowConfirmed
	if err := u.requests.Update(ctx, req); err != nil {
		return ErrInternal
	}

	u.notify(ctx, req.UserID, notification.TypeInterviewScheduled, "Interview Confirmed",
		fmt.Sprintf("Your alternative interview proposal has been accepted! Interview scheduled for %s at %s.", in.FinalDate, in.FinalTime),
		map[string]any{"request_id": req.ID.String(), "final_date": in.FinalDate, "final_time": in.FinalTime})
	return nil
}

func (u *Schedule) RejectAlternative(ctx context.Context, recruiterID, requestID uuid.UUID) error {
	req, err := u.findRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.RecruiterID == nil || *req.RecruiterID != recruiterID {
		return ErrForbidden
	}

	req.Status = schedule.StatusRejected
	req.WorkflowStatus = schedule.WorkflowRejected
	if err := u.requests.Update(ctx, req); err != nil {
		return ErrInternal
	}

	u.notify(ctx, req.UserID, notification.TypeInterviewDeclined, "Alternative Proposal Declined",
		"Your alternative interview proposal has been declined. The recruiter may propose a new date.",
		map[string]any{"request_id": req.ID.String()})
	return nil
}

func (u *Schedule) ListForUser(ctx context.Context, userID uuid.UUID) ([]schedule.Request, error) {
	out, err := u.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Schedule) ListForCandidate(ctx context.Context, candidateID uuid.UUID) ([]schedule.Request, error) {
	if _, err := u.users.FindByID(ctx, candidateID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}
	return u.ListForUser(ctx, candidateID)
}

func (u *Schedule) ListPending(ctx context.Context) ([]schedule.PendingRequest, error) {
	out, err := u.requests.ListPending(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Schedule) findRequest(ctx context.Context, id uuid.UUID) (*schedule.Request, error) {
	req, err := u.requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, ErrInternal
	}
	return req, nil
}

func (u *Schedule) notify(ctx context.Context, userID uuid.UUID, typ, title, message string, data map[string]any) {
	if u.notifier == nil {
		return
	}
	u.notifier.Create(ctx, &notification.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		Data:    data,
	})
}

func (u *Schedule) sendDecisionMail(ctx context.Context, req *schedule.Request, approved bool) {
	if u.mailer == nil {
		return
	}
	candidate, err := u.users.FindByID(ctx, req.UserID)
	if err != nil {
		u.logger.Printf("Schedule | decision mail skipped request=%s err=%v", req.ID, err)
		return
	}

	dateInfo := fmt.Sprintf("Requested date: %s at %s", req.PreferredDate, req.PreferredTime)
	if approved {
		date := req.ScheduledDate
		if date == "" {
			date = req.PreferredDate
		}
		dateInfo = "Scheduled for: " + date
	}

	u.mailer.SendDecision(ctx, candidate.Email, candidate.FullName, approved, dateInfo, req.RecruiterResponse)
}
