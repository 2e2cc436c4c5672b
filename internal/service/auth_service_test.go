package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/storefront-client/internal/api"
	"github.com/storefront-client/internal/models"
)

type fakeAuthAPI struct {
	loginErr     error
	registerMsg  string
	registerErr  error
	detailsErr   error
	loginCalls   int
	detailsCalls int
	user         models.User
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return fmt.Sprintf("tok-%d", f.loginCalls), nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, name, email, password string) (string, error) {
	return f.registerMsg, f.registerErr
}

func (f *fakeAuthAPI) UserDetails(ctx context.Context) (*models.User, error) {
	f.detailsCalls++
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	user := f.user
	return &user, nil
}

func (f *fakeAuthAPI) Deactivate(ctx context.Context, userID string) error {
	return nil
}

func TestLoginMapsBackendErrors(t *testing.T) {
	cases := []struct {
		backend error
		want    error
	}{
		{fmt.Errorf("%w: POST /api/User/login", api.ErrUnauthorized), ErrInvalidPassword},
		{fmt.Errorf("%w: POST /api/User/login", api.ErrBadRequest), ErrUserNotFound},
		{errBackendDown, ErrTryAgainLater},
	}
	for _, tc := range cases {
		svc := NewAuthService(&fakeAuthAPI{loginErr: tc.backend}, setupSession(t))
		if err := svc.Login(context.Background(), "a@b.com", "pw"); !errors.Is(err, tc.want) {
			t.Fatalf("backend %v: expected %v, got %v", tc.backend, tc.want, err)
		}
	}
}

func TestLoginStoresSessionState(t *testing.T) {
	sess := setupSession(t)
	backend := &fakeAuthAPI{user: models.User{ID: "cust-1", Email: "a@b.com"}}
	svc := NewAuthService(backend, sess)

	if err := svc.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if token, ok, _ := sess.Token(); !ok || token == "" {
		t.Fatalf("expected token stored")
	}
	if email, pass, ok, _ := sess.Credentials(); !ok || email != "a@b.com" || pass != "pw" {
		t.Fatalf("expected credentials cached")
	}
	if id, ok, _ := sess.CustomerID(); !ok || id != "cust-1" {
		t.Fatalf("expected customer id stored, got %q", id)
	}
}

func TestRegisterMapsEmailInUse(t *testing.T) {
	svc := NewAuthService(&fakeAuthAPI{registerMsg: "Email already in use. Try Login"}, setupSession(t))
	if err := svc.Register(context.Background(), "Jane", "a@b.com", "pw"); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestUserDetailsRefreshesExpiredTokenOnce(t *testing.T) {
	sess := setupSession(t)
	if err := sess.SetCredentials("a@b.com", "pw"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}
	// 没有令牌相当于已过期，必须先静默重登
	backend := &fakeAuthAPI{user: models.User{ID: "cust-1"}}
	svc := NewAuthService(backend, sess)

	user, err := svc.UserDetails(context.Background())
	if err != nil {
		t.Fatalf("user details: %v", err)
	}
	if user.ID != "cust-1" {
		t.Fatalf("unexpected user %+v", user)
	}
	if backend.loginCalls != 1 {
		t.Fatalf("expected exactly one silent login, got %d", backend.loginCalls)
	}
	if token, ok, _ := sess.Token(); !ok || token != "tok-1" {
		t.Fatalf("expected refreshed token stored, got %q", token)
	}
}

func TestUserDetailsWithoutCredentialsFails(t *testing.T) {
	svc := NewAuthService(&fakeAuthAPI{}, setupSession(t))
	if _, err := svc.UserDetails(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	sess := setupSession(t)
	backend := &fakeAuthAPI{user: models.User{ID: "cust-1"}}
	svc := NewAuthService(backend, sess)
	if err := svc.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if svc.LoggedIn() {
		t.Fatalf("expected logged out")
	}
}
