package usecase

import (
	"context"
	"errors"

	"talentmate/internal/domain/schedule"
	"talentmate/internal/domain/session"
	"talentmate/internal/domain/user"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// ProfileView is the profile page payload: the user plus their
// interview history and schedule requests.
type ProfileView struct {
	User       *user.User         `json:"user"`
	Interviews []session.Session  `json:"interviews"`
	Requests   []schedule.Request `json:"interview_requests"`
}

// Dashboard is the recruiter overview.
type Dashboard struct {
	Candidates      []user.CandidateSummary   `json:"candidates"`
	PendingRequests []schedule.PendingRequest `json:"pending_requests"`
}

type UserUsecase interface {
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd user.ProfileUpdate) (*user.User, error)
	RecruiterDashboard(ctx context.Context) (*Dashboard, error)
}

type Users struct {
	users    user.Repository
	sessions session.Repository
	requests schedule.Repository
}

func NewUserUsecase(users user.Repository, sessions session.Repository, requests schedule.Repository) *Users {
	return &Users{users: users, sessions: sessions, requests: requests}
}

func (u *Users) Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	usr.PasswordHash = ""

	interviews, err := u.sessions.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	requests, err := u.requests.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	return &ProfileView{User: usr, Interviews: interviews, Requests: requests}, nil
}

func (u *Users) UpdateProfile(ctx context.Context, userID uuid.UUID, upd user.ProfileUpdate) (*user.User, error) {
	usr, err := u.users.UpdateProfile(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Users) RecruiterDashboard(ctx context.Context) (*Dashboard, error) {
	candidates, err := u.users.ListCandidates(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	pending, err := u.requests.ListPending(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return &Dashboard{Candidates: candidates, PendingRequests: pending}, nil
}
