package repository

import (
	"context"
	"database/sql"
	"errors"

	"talentmate/internal/database"
	"talentmate/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const requestColumns = `id, user_id, session_id,
	COALESCE(preferred_date, ''), COALESCE(preferred_time, ''), COALESCE(message, ''),
	status, COALESCE(workflow_status, ''), recruiter_id, COALESCE(recruiter_response, ''),
	COALESCE(recruiter_proposed_date, ''), COALESCE(recruiter_proposed_time, ''),
	COALESCE(user_response, ''), COALESCE(user_proposed_date, ''), COALESCE(user_proposed_time, ''),
	COALESCE(scheduled_date, ''), COALESCE(final_date, ''), COALESCE(final_time, ''),
	created_at, updated_at`

type PostgresRequestRepository struct {
	db database.DB
}

func NewPostgresRequestRepository(db database.DB) *PostgresRequestRepository {
	return &PostgresRequestRepository{db: db}
}

func (r *PostgresRequestRepository) Create(ctx context.Context, req *schedule.Request) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO interview_requests
			(user_id, session_id, preferred_date, preferred_time, message, status, workflow_status,
			 recruiter_id, recruiter_response, recruiter_proposed_date, recruiter_proposed_time)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, NULLIF($7, ''),
			 $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''))
		 RETURNING id, created_at, updated_at`,
		req.UserID, req.SessionID, req.PreferredDate, req.PreferredTime, req.Message,
		req.Status, req.WorkflowStatus, req.RecruiterID, req.RecruiterResponse,
		req.RecruiterProposedDate, req.RecruiterProposedTime,
	)
	return row.Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *PostgresRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Request, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM interview_requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *PostgresRequestRepository) Update(ctx context.Context, req *schedule.Request) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE interview_requests SET
			status = $2, workflow_status = NULLIF($3, ''),
			recruiter_id = $4, recruiter_response = NULLIF($5, ''),
			scheduled_date = NULLIF($6, ''),
			user_response = NULLIF($7, ''),
			user_proposed_date = NULLIF($8, ''), user_proposed_time = NULLIF($9, ''),
			message = NULLIF($10, ''),
			final_date = NULLIF($11, ''), final_time = NULLIF($12, ''),
			updated_at = now()
		 WHERE id = $1`,
		req.ID, req.Status, req.WorkflowStatus, req.RecruiterID, req.RecruiterResponse,
		req.ScheduledDate, req.UserResponse, req.UserProposedDate, req.UserProposedTime,
		req.Message, req.FinalDate, req.FinalTime,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

func (r *PostgresRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]schedule.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requestColumns+`
		 FROM interview_requests
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedule.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRequestRepository) ListPending(ctx context.Context) ([]schedule.PendingRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ir.id, ir.user_id, ir.session_id,
			COALESCE(ir.preferred_date, ''), COALESCE(ir.preferred_time, ''), COALESCE(ir.message, ''),
			ir.status, COALESCE(ir.workflow_status, ''), ir.recruiter_id, COALESCE(ir.recruiter_response, ''),
			COALESCE(ir.recruiter_proposed_date, ''), COALESCE(ir.recruiter_proposed_time, ''),
			COALESCE(ir.user_response, ''), COALESCE(ir.user_proposed_date, ''), COALESCE(ir.user_proposed_time, ''),
			COALESCE(ir.scheduled_date, ''), COALESCE(ir.final_date, ''), COALESCE(ir.final_time, ''),
			ir.created_at, ir.updated_at,
			COALESCE(u.full_name, ''), u.email, s.job_role, s.overall_score
		 FROM interview_requests ir
		 JOIN users u ON u.id = ir.user_id
		 LEFT JOIN interview_sessions s ON s.id = ir.session_id
		 WHERE ir.status = 'pending'
		 ORDER BY ir.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedule.PendingRequest, 0)
	for rows.Next() {
		var p schedule.PendingRequest
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.SessionID,
			&p.PreferredDate, &p.PreferredTime, &p.Message,
			&p.Status, &p.WorkflowStatus, &p.RecruiterID, &p.RecruiterResponse,
			&p.RecruiterProposedDate, &p.RecruiterProposedTime,
			&p.UserResponse, &p.UserProposedDate, &p.UserProposedTime,
			&p.ScheduledDate, &p.FinalDate, &p.FinalTime,
			&p.CreatedAt, &p.UpdatedAt,
			&p.CandidateName, &p.CandidateEmail, &p.JobRole, &p.OverallScore,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRequest(row rowScanner) (*schedule.Request, error) {
	var req schedule.Request
	if err := row.Scan(
		&req.ID, &req.UserID, &req.SessionID,
		&req.PreferredDate, &req.PreferredTime, &req.Message,
		&req.Status, &req.WorkflowStatus, &req.RecruiterID, &req.RecruiterResponse,
		&req.RecruiterProposedDate, &req.RecruiterProposedTime,
		&req.UserResponse, &req.UserProposedDate, &req.UserProposedTime,
		&req.ScheduledDate, &req.FinalDate, &req.FinalTime,
		&req.CreatedAt, &req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}
