package session

import (
	"math"
	"time"

	"github.com/google/uuid"

	"talentmate/internal/domain/interview"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Session is one mock-interview run: the analyzed resume profile, the
// generated question set and the per-question answers and scores.
type Session struct {
	ID           uuid.UUID                        `json:"id"`
	UserID       uuid.UUID                        `json:"user_id"`
	JobRole      string                           `json:"job_role"`
	ResumeData   interview.Profile                `json:"resume_data"`
	Questions    []interview.QuestionRecord       `json:"questions"`
	Answers      map[string]string                `json:"answers"`
	Scores       map[string]interview.ScoreResult `json:"scores"`
	OverallScore *int                             `json:"overall_score,omitempty"`
	Status       string                           `json:"status"`
	CreatedAt    time.Time                        `json:"created_at"`
	UpdatedAt    time.Time                        `json:"updated_at"`
}

// QuestionByID returns the question record with the given id.
func (s *Session) QuestionByID(id string) (interview.QuestionRecord, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return interview.QuestionRecord{}, false
}

// Answered reports whether every generated question has a score.
func (s *Session) Answered() bool {
	if len(s.Questions) == 0 {
		return false
	}
	for _, q := range s.Questions {
		if _, ok := s.Scores[q.ID]; !ok {
			return false
		}
	}
	return true
}

// ComputeOverall returns the rounded mean of the per-question scores,
// or 0 when nothing has been scored yet. Ties round half to even.
func (s *Session) ComputeOverall() int {
	if len(s.Scores) == 0 {
		return 0
	}
	total := 0
	for _, sc := range s.Scores {
		total += sc.Score
	}
	return int(math.RoundToEven(float64(total) / float64(len(s.Scores))))
}
