package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"talentmate/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUsernameAlreadyTaken   = errors.New("username already taken")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Username string
	Password string
}

// Service owns credential handling: password hashing on register,
// hash comparison on login. Role is always "user" at registration;
// recruiter accounts come from the seeder.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" {
		return nil, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return nil, ErrInvalidInput
	}

	if exists, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return nil, ErrInternal
	} else if exists {
		return nil, ErrEmailAlreadyRegistered
	}
	if exists, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return nil, ErrInternal
	} else if exists {
		return nil, ErrUsernameAlreadyTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrInternal
	}

	u := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         user.RoleUser,
	}

	if err := s.users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, ErrEmailAlreadyRegistered
		case errors.Is(err, user.ErrUsernameTaken):
			return nil, ErrUsernameAlreadyTaken
		}
		return nil, ErrInternal
	}

	return sanitize(u), nil
}

// Login accepts either the username or the email in the username
// field, matching the original login form.
func (s *Service) Login(ctx context.Context, in LoginInput) (*user.User, error) {
	ident := strings.TrimSpace(in.Username)
	if ident == "" || in.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.users.FindByUsername(ctx, ident)
	if errors.Is(err, user.ErrNotFound) {
		u, err = s.users.FindByEmail(ctx, normalizeEmail(ident))
	}
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return sanitize(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(u *user.User) *user.User {
	out := *u
	out.PasswordHash = ""
	return &out
}
