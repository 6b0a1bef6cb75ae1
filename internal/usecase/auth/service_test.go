package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"talentmate/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byUsername map[string]*user.User
	byEmail    map[string]*user.User
	created    []*user.User
	createErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*user.User{},
		byEmail:    map[string]*user.User{},
	}
}

func (f *fakeUserRepo) add(u *user.User) {
	f.byUsername[u.Username] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = uuid.New()
	f.created = append(f.created, u)
	f.add(u)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, upd user.ProfileUpdate) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) ListCandidates(ctx context.Context) ([]user.CandidateSummary, error) {
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "jdoe",
		Email:    "JDoe@Example.com",
		Password: "supersecret",
		FullName: " Jane Doe ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "jdoe@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.FullName != "Jane Doe" {
		t.Fatalf("full name not trimmed: %q", u.FullName)
	}
	if u.Role != user.RoleUser {
		t.Fatalf("expected role %q, got %q", user.RoleUser, u.Role)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked in returned user")
	}
	if len(repo.created) != 1 || repo.created[0].PasswordHash == "" {
		t.Fatalf("stored user missing password hash")
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo())
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&user.User{ID: uuid.New(), Username: "taken", Email: "taken@example.com"})
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "fresh",
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}

	_, err = svc.Register(context.Background(), RegisterInput{
		Username: "taken",
		Email:    "fresh@example.com",
		Password: "supersecret",
	})
	if !errors.Is(err, ErrUsernameAlreadyTaken) {
		t.Fatalf("expected ErrUsernameAlreadyTaken, got %v", err)
	}
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&user.User{
		ID:           uuid.New(),
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: mustHash(t, "supersecret"),
	})
	svc := NewService(repo)

	for _, ident := range []string{"jdoe", "jdoe@example.com", "JDoe@Example.com"} {
		u, err := svc.Login(context.Background(), LoginInput{Username: ident, Password: "supersecret"})
		if err != nil {
			t.Fatalf("login with %q: %v", ident, err)
		}
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked in returned user")
		}
	}
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&user.User{
		ID:           uuid.New(),
		Username:     "jdoe",
		Email:        "jdoe@example.com",
		PasswordHash: mustHash(t, "supersecret"),
	})
	svc := NewService(repo)

	if _, err := svc.Login(context.Background(), LoginInput{Username: "jdoe", Password: "wrongpass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "supersecret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
