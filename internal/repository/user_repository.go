package repository

import (
	"context"
	"database/sql"
	"errors"

	"talentmate/internal/database"
	"talentmate/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = `id, username, email, password_hash, COALESCE(full_name, ''), role,
	COALESCE(phone, ''), COALESCE(company, ''), COALESCE(position, ''), experience_years,
	COALESCE(skills, ''), COALESCE(bio, ''), created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, full_name, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		u.Username, u.Email, u.PasswordHash, u.FullName, u.Role,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return user.ErrEmailTaken
			case "users_username_key":
				return user.ErrUsernameTaken
			}
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var u user.User
	row := r.db.QueryRow(ctx, query, arg)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.Phone, &u.Company, &u.Position, &u.ExperienceYears,
		&u.Skills, &u.Bio, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (*user.User, error) {
	var u user.User
	row := r.db.QueryRow(ctx,
		`UPDATE users SET
			phone = COALESCE($2, phone),
			company = COALESCE($3, company),
			position = COALESCE($4, position),
			experience_years = COALESCE($5, experience_years),
			skills = COALESCE($6, skills),
			bio = COALESCE($7, bio),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, upd.Phone, upd.Company, upd.Position, upd.ExperienceYears, upd.Skills, upd.Bio,
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role,
		&u.Phone, &u.Company, &u.Position, &u.ExperienceYears,
		&u.Skills, &u.Bio, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepository) ListCandidates(ctx context.Context) ([]user.CandidateSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id, COALESCE(u.full_name, ''), u.email, COALESCE(u.company, ''),
			COALESCE(u.position, ''), u.experience_years,
			MAX(s.overall_score), COUNT(s.id), u.created_at
		 FROM users u
		 LEFT JOIN interview_sessions s ON s.user_id = u.id
		 WHERE u.role = 'user'
		 GROUP BY u.id
		 ORDER BY MAX(s.overall_score) DESC NULLS LAST`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.CandidateSummary, 0)
	for rows.Next() {
		var c user.CandidateSummary
		if err := rows.Scan(
			&c.ID, &c.FullName, &c.Email, &c.Company, &c.Position,
			&c.ExperienceYears, &c.BestScore, &c.TotalInterviews, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *PostgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username)
}

func (r *PostgresUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, query, arg)
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}
