package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Request status values. A request either starts as a candidate ask
// (pending) or as a recruiter invitation (recruiter_proposed).
const (
	StatusPending           = "pending"
	StatusApproved          = "approved"
	StatusRejected          = "rejected"
	StatusRecruiterProposed = "recruiter_proposed"
)

// Workflow status values for the proposal/counter-proposal exchange.
const (
	WorkflowUserResponsePending       = "user_response_pending"
	WorkflowConfirmed                 = "confirmed"
	WorkflowDeclined                  = "declined"
	WorkflowAwaitingRecruiterResponse = "awaiting_recruiter_response"
	WorkflowRejected                  = "rejected"
)

// Candidate response values.
const (
	ResponseAccepted            = "accepted"
	ResponseDeclined            = "declined"
	ResponseAlternativeProposed = "alternative_proposed"
)

type Request struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	SessionID *uuid.UUID `json:"session_id,omitempty"`

	PreferredDate string `json:"preferred_date,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
	Message       string `json:"message,omitempty"`

	Status            string     `json:"status"`
	RecruiterID       *uuid.UUID `json:"recruiter_id,omitempty"`
	RecruiterResponse string     `json:"recruiter_response,omitempty"`
	ScheduledDate     string     `json:"scheduled_date,omitempty"`

	RecruiterProposedDate string `json:"recruiter_proposed_date,omitempty"`
	RecruiterProposedTime string `json:"recruiter_proposed_time,omitempty"`
	UserResponse          string `json:"user_response,omitempty"`
	UserProposedDate      string `json:"user_proposed_date,omitempty"`
	UserProposedTime      string `json:"user_proposed_time,omitempty"`
	WorkflowStatus        string `json:"workflow_status,omitempty"`

	FinalDate string `json:"final_date,omitempty"`
	FinalTime string `json:"final_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PendingRequest is one row of the recruiter dashboard pending list,
// a request joined with its candidate and originating session.
type PendingRequest struct {
	Request
	CandidateName  string  `json:"candidate_name"`
	CandidateEmail string  `json:"candidate_email"`
	JobRole        *string `json:"job_role,omitempty"`
	OverallScore   *int    `json:"overall_score,omitempty"`
}
