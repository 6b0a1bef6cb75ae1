package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"talentmate/internal/domain/interview"
	"talentmate/internal/domain/notification"
	"talentmate/internal/domain/session"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrEmptyJobRole     = errors.New("job role is required")
)

type StartSessionInput struct {
	UserID   uuid.UUID
	JobRole  string
	Filename string
	Resume   []byte
}

type StartSessionOutput struct {
	SessionID     uuid.UUID                  `json:"session_id"`
	Questions     []interview.QuestionRecord `json:"questions"`
	ResumeSummary ResumeSummary              `json:"resume_summary"`
}

type ResumeSummary struct {
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
}

type AnswerOutput struct {
	Score          int      `json:"score"`
	Feedback       string   `json:"feedback"`
	AreasToImprove []string `json:"areas_to_improve"`
	OverallScore   int      `json:"overall_score"`
	Completed      bool     `json:"completed"`
}

// SessionResults is the aggregated view of a finished (or partial)
// session.
type SessionResults struct {
	SessionID              uuid.UUID                        `json:"session_id"`
	OverallScore           float64                          `json:"overall_score"`
	MaxScore               int                              `json:"max_score"`
	MinScore               int                              `json:"min_score"`
	TotalQuestions         int                              `json:"total_questions"`
	AnsweredQuestions      int                              `json:"answered_questions"`
	DetailedScores         map[string]interview.ScoreResult `json:"detailed_scores"`
	ImprovementSuggestions []string                         `json:"improvement_suggestions"`
	JobRole                string                           `json:"job_role"`
	SkillsIdentified       []string                         `json:"skills_identified"`
}

// ResumeExtractor pulls plain text from an uploaded resume file.
type ResumeExtractor func(filename string, data []byte) (string, error)

type InterviewUsecase interface {
	StartSession(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*session.Session, error)
	SubmitAnswer(ctx context.Context, userID, sessionID uuid.UUID, questionID, answer string) (*AnswerOutput, error)
	Results(ctx context.Context, userID, sessionID uuid.UUID) (*SessionResults, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Session, error)
}

type Interview struct {
	sessions  session.Repository
	generator *interview.Generator
	scorer    *interview.Scorer
	extract   ResumeExtractor
	cache     Cache
	notifier  NotificationCreator
	logger    *log.Logger
}

func NewInterviewUsecase(
	sessions session.Repository,
	generator *interview.Generator,
	scorer *interview.Scorer,
	extract ResumeExtractor,
	cache Cache,
	notifier NotificationCreator,
	logger *log.Logger,
) *Interview {
	if logger == nil {
		logger = log.Default()
	}
	return &Interview{
		sessions:  sessions,
		generator: generator,
		scorer:    scorer,
		extract:   extract,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
	}
}

func (u *Interview) StartSession(ctx context.Context, in StartSessionInput) (*StartSessionOutput, error) {
	if in.UserID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if in.JobRole == "" {
		return nil, ErrEmptyJobRole
	}

	// Extraction failure is not fatal: an unreadable resume just
	// means an empty profile.
	text := ""
	if u.extract != nil && len(in.Resume) > 0 {
		var err error
		text, err = u.extract(in.Filename, in.Resume)
		if err != nil {
			u.logger.Printf("Interview | resume extraction failed file=%s err=%v", in.Filename, err)
			text = ""
		}
	}

	profile := interview.AnalyzeResume(text)
	questions := u.generator.Generate(profile, in.JobRole, interview.DefaultQuestionCount)

	s := &session.Session{
		UserID:     in.UserID,
		JobRole:    in.JobRole,
		ResumeData: profile,
		Questions:  questions,
		Answers:    map[string]string{},
		Scores:     map[string]interview.ScoreResult{},
		Status:     session.StatusInProgress,
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &StartSessionOutput{
		SessionID: s.ID,
		Questions: questions,
		ResumeSummary: ResumeSummary{
			Skills:          profile.Skills,
			ExperienceLevel: string(profile.ExperienceLevel),
		},
	}, nil
}

func (u *Interview) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*session.Session, error) {
	s, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, ErrInternal
	}
	if s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *Interview) SubmitAnswer(ctx context.Context, userID, sessionID uuid.UUID, questionID, answer string) (*AnswerOutput, error) {
	s, err := u.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	q, ok := s.QuestionByID(questionID)
	if !ok {
		return nil, ErrQuestionNotFound
	}

	result := u.scorer.Score(answer, q.Type)

	s.Answers[questionID] = answer
	s.Scores[questionID] = result

	overall := s.ComputeOverall()
	s.OverallScore = &overall

	completed := s.Answered()
	if completed {
		s.Status = session.StatusCompleted
	}

	if err := u.sessions.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, resultsCacheKey(sessionID))
	}

	if completed && u.notifier != nil {
		u.notifier.Create(ctx, &notification.Notification{
			UserID:  userID,
			Type:    notification.TypeInterviewResult,
			Title:   "Interview Results Available",
			Message: fmt.Sprintf("Your interview has been completed with a score of %d%%. Click to view your detailed results.", overall),
			Data:    map[string]any{"session_id": sessionID.String(), "score": overall},
		})
	}

	return &AnswerOutput{
		Score:          result.Score,
		Feedback:       result.Feedback,
		AreasToImprove: result.AreasToImprove,
		OverallScore:   overall,
		Completed:      completed,
	}, nil
}

func (u *Interview) Results(ctx context.Context, userID, sessionID uuid.UUID) (*SessionResults, error) {
	key := resultsCacheKey(sessionID)
	if u.cache != nil {
		var cached SessionResults
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			// Ownership still has to hold for cached entries.
			if s, err := u.GetSession(ctx, userID, sessionID); err != nil {
				return nil, err
			} else if s.ID == cached.SessionID {
				return &cached, nil
			}
		}
	}

	s, err := u.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	res := aggregateResults(s)
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, res, 0); err != nil {
			u.logger.Printf("Interview | results cache write failed session=%s err=%v", sessionID, err)
		}
	}
	return res, nil
}

func (u *Interview) ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	out, err := u.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func aggregateResults(s *session.Session) *SessionResults {
	var (
		sum      int
		maxScore int
		minScore int
	)
	first := true
	for _, sc := range s.Scores {
		sum += sc.Score
		if first || sc.Score > maxScore {
			maxScore = sc.Score
		}
		if first || sc.Score < minScore {
			minScore = sc.Score
		}
		first = false
	}

	avg := 0.0
	if len(s.Scores) > 0 {
		avg = math.Round(float64(sum)/float64(len(s.Scores))*10) / 10
	}

	// Walk questions in order so suggestion dedup is deterministic.
	seen := map[string]struct{}{}
	improvements := make([]string, 0)
	for _, q := range s.Questions {
		sc, ok := s.Scores[q.ID]
		if !ok {
			continue
		}
		for _, a := range sc.AreasToImprove {
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			improvements = append(improvements, a)
		}
	}
	if len(improvements) > 5 {
		improvements = improvements[:5]
	}

	return &SessionResults{
		SessionID:              s.ID,
		OverallScore:           avg,
		MaxScore:               maxScore,
		MinScore:               minScore,
		TotalQuestions:         len(s.Questions),
		AnsweredQuestions:      len(s.Answers),
		DetailedScores:         s.Scores,
		ImprovementSuggestions: improvements,
		JobRole:                s.JobRole,
		SkillsIdentified:       s.ResumeData.Skills,
	}
}

func resultsCacheKey(sessionID uuid.UUID) string {
	return "results:" + sessionID.String()
}
