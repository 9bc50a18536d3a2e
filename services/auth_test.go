package services

import (
	"context"
	"errors"
	"testing"

	"canteenmate/models"
)

func TestLoginCreatesDemoUser(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	user, err := Login(ctx, s, "new@campus.edu", "whatever")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Demo User" {
		t.Errorf("name = %q, want Demo User", user.Name)
	}
	if !user.IsLoggedIn {
		t.Error("user not marked logged in")
	}

	current := CurrentUser(ctx, s)
	if current == nil || current.ID != user.ID {
		t.Errorf("current user = %+v, want %s", current, user.ID)
	}
}

func TestLoginExistingDemoUserAcceptsAnyPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	first, err := Login(ctx, s, "demo@campus.edu", "one")
	if err != nil {
		t.Fatal(err)
	}
	Logout(ctx, s)

	second, err := Login(ctx, s, "demo@campus.edu", "completely different")
	if err != nil {
		t.Fatalf("Login with different password: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("login created a second user: %s vs %s", second.ID, first.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	if _, err := Register(ctx, s, "Priya", "priya@campus.edu", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := Register(ctx, s, "Someone Else", "priya@campus.edu", "other"); !errors.Is(err, models.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	users := loadUsers(ctx, s)
	if len(users) != 1 {
		t.Errorf("users = %d, want 1 (no duplicate record)", len(users))
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	if _, err := Register(ctx, s, "Priya", "priya@campus.edu", "secret"); err != nil {
		t.Fatal(err)
	}
	if current := CurrentUser(ctx, s); current != nil {
		t.Errorf("current user after register = %+v, want nil", current)
	}
}

func TestLoginVerifiesRegisteredPassword(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	if _, err := Register(ctx, s, "Priya", "priya@campus.edu", "secret"); err != nil {
		t.Fatal(err)
	}

	if _, err := Login(ctx, s, "priya@campus.edu", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if current := CurrentUser(ctx, s); current != nil {
		t.Errorf("current user after failed login = %+v, want nil", current)
	}

	user, err := Login(ctx, s, "priya@campus.edu", "secret")
	if err != nil {
		t.Fatalf("correct password: %v", err)
	}
	if user.Name != "Priya" {
		t.Errorf("name = %q, want Priya", user.Name)
	}
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	if _, err := Login(ctx, s, "demo@campus.edu", ""); err != nil {
		t.Fatal(err)
	}
	Logout(ctx, s)
	if current := CurrentUser(ctx, s); current != nil {
		t.Errorf("current user after logout = %+v, want nil", current)
	}
	// The user record itself survives.
	if got := loadUsers(ctx, s); len(got) != 1 {
		t.Errorf("users after logout = %d, want 1", len(got))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := newTestSession()
	b := newTestSession()

	if _, err := Login(ctx, a, "a@campus.edu", ""); err != nil {
		t.Fatal(err)
	}
	if current := CurrentUser(ctx, b); current != nil {
		t.Errorf("session b sees session a's login: %+v", current)
	}
}
