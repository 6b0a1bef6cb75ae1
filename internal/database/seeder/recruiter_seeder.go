package seeder

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"talentmate/internal/config"
	"talentmate/internal/database"
)

// RecruiterSeeder ensures the configured default recruiter account
// exists. It only runs when all seed settings are present and never
// overwrites an existing account.
type RecruiterSeeder struct {
	cfg    config.SeedConfig
	logger *log.Logger
}

func NewRecruiterSeeder(cfg config.SeedConfig, logger *log.Logger) *RecruiterSeeder {
	if logger == nil {
		logger = log.Default()
	}
	return &RecruiterSeeder{cfg: cfg, logger: logger}
}

func (s *RecruiterSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(s.cfg.RecruiterEmail))
	password := s.cfg.RecruiterPassword
	name := strings.TrimSpace(s.cfg.RecruiterName)

	if email == "" || password == "" || name == "" {
		s.logger.Printf("Seeder | recruiter seed skipped, settings incomplete")
		return nil
	}

	var exists bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("check recruiter account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash recruiter password: %w", err)
	}

	username := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		username = email[:at]
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (username, email, password_hash, full_name, role)
		 VALUES ($1, $2, $3, $4, 'recruiter')
		 ON CONFLICT (email) DO NOTHING`,
		username, email, string(hash), name,
	)
	if err != nil {
		return fmt.Errorf("insert recruiter account: %w", err)
	}

	s.logger.Printf("Seeder | default recruiter account created email=%s", email)
	return nil
}
