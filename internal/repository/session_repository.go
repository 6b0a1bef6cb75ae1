package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"talentmate/internal/database"
	"talentmate/internal/domain/interview"
	"talentmate/internal/domain/session"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresSessionRepository struct {
	db database.DB
}

func NewPostgresSessionRepository(db database.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s *session.Session) error {
	resume, questions, answers, scores, err := marshalSessionJSON(s)
	if err != nil {
		return err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO interview_sessions (user_id, job_role, resume_data, questions, answers, scores, overall_score, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.JobRole, resume, questions, answers, scores, s.OverallScore, s.Status,
	)
	return row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *PostgresSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_role, resume_data, questions, answers, scores, overall_score, status, created_at, updated_at
		 FROM interview_sessions
		 WHERE id = $1`,
		id,
	)
	s, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *PostgresSessionRepository) Update(ctx context.Context, s *session.Session) error {
	resume, questions, answers, scores, err := marshalSessionJSON(s)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE interview_sessions
		 SET resume_data = $2, questions = $3, answers = $4, scores = $5,
		     overall_score = $6, status = $7, updated_at = now()
		 WHERE id = $1`,
		s.ID, resume, questions, answers, scores, s.OverallScore, s.Status,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (r *PostgresSessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]session.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_role, resume_data, questions, answers, scores, overall_score, status, created_at, updated_at
		 FROM interview_sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]session.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSessionRepository) BestScoreByUser(ctx context.Context, userID uuid.UUID) (*int, error) {
	var best *int
	row := r.db.QueryRow(ctx,
		`SELECT MAX(overall_score) FROM interview_sessions WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&best); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return best, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*session.Session, error) {
	var (
		s        session.Session
		resume   []byte
		question []byte
		answers  []byte
		scores   []byte
	)
	if err := row.Scan(
		&s.ID, &s.UserID, &s.JobRole, &resume, &question, &answers, &scores,
		&s.OverallScore, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(resume, &s.ResumeData); err != nil {
		return nil, fmt.Errorf("decode resume_data: %w", err)
	}
	if err := json.Unmarshal(question, &s.Questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if err := json.Unmarshal(answers, &s.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if err := json.Unmarshal(scores, &s.Scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	if s.Scores == nil {
		s.Scores = map[string]interview.ScoreResult{}
	}
	return &s, nil
}

func marshalSessionJSON(s *session.Session) (resume, questions, answers, scores []byte, err error) {
	if resume, err = json.Marshal(s.ResumeData); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode resume_data: %w", err)
	}
	if questions, err = json.Marshal(s.Questions); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode questions: %w", err)
	}
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	if answers, err = json.Marshal(s.Answers); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode answers: %w", err)
	}
	if s.Scores == nil {
		s.Scores = map[string]interview.ScoreResult{}
	}
	if scores, err = json.Marshal(s.Scores); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode scores: %w", err)
	}
	return resume, questions, answers, scores, nil
}
