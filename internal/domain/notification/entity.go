package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification type values.
const (
	TypeInterviewResult      = "interview_result"
	TypeInterviewInvitation  = "interview_invitation"
	TypeInterviewAccepted    = "interview_accepted"
	TypeInterviewDeclined    = "interview_declined"
	TypeInterviewAlternative = "interview_alternative"
	TypeInterviewScheduled   = "interview_scheduled"
)

type Notification struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}
