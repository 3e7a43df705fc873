package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/infra/repository"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/testutil"
	"github.com/BruksfildServices01/luxstyle-booking/internal/usecase/auth"
)

func TestRegisterThenLogin(t *testing.T) {
	repo := repository.NewAccountGormRepository(testutil.NewDB(t))
	register := auth.NewRegister(repo, nil)
	login := auth.NewLogin(repo, nil)
	ctx := context.Background()

	user, err := register.Execute(ctx, auth.RegisterInput{Username: "  alice ", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Username != "alice" || user.Role != models.RoleClient || user.PasswordHash == "secret1" {
		t.Fatalf("unexpected user %+v", user)
	}

	got, err := login.Execute(ctx, auth.LoginInput{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("logged in as %d, want %d", got.ID, user.ID)
	}
}

func TestLongPasswordRegistersAndLogsIn(t *testing.T) {
	repo := repository.NewAccountGormRepository(testutil.NewDB(t))
	ctx := context.Background()
	password := strings.Repeat("a", 80)

	user, err := auth.NewRegister(repo, nil).Execute(ctx, auth.RegisterInput{Username: "carol", Password: password})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	login := auth.NewLogin(repo, nil)
	got, err := login.Execute(ctx, auth.LoginInput{Username: "carol", Password: password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("logged in as %d, want %d", got.ID, user.ID)
	}

	// only the first 72 bytes would reach a bare bcrypt
	other := strings.Repeat("a", 72) + "bbbbbbbb"
	if _, err := login.Execute(ctx, auth.LoginInput{Username: "carol", Password: other}); !httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		t.Fatalf("password sharing a 72 byte prefix: got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	repo := repository.NewAccountGormRepository(testutil.NewDB(t))
	register := auth.NewRegister(repo, nil)
	ctx := context.Background()

	if _, err := register.Execute(ctx, auth.RegisterInput{Username: "alice", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		username, password, code string
	}{
		{"", "secret1", httperr.CodeMissingCredentials},
		{"bob", "   ", httperr.CodeMissingCredentials},
		{"bo", "secret1", httperr.CodeUsernameTooShort},
		{"bob", "12345", httperr.CodePasswordTooShort},
		{strings.Repeat("b", 81), "secret1", httperr.CodeUsernameTooLong},
		{"alice", "another1", httperr.CodeUsernameTaken},
	}
	for _, tc := range cases {
		_, err := register.Execute(ctx, auth.RegisterInput{Username: tc.username, Password: tc.password})
		if !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%q/%q: expected %s, got %v", tc.username, tc.password, tc.code, err)
		}
	}
}

func TestLoginFailures(t *testing.T) {
	repo := repository.NewAccountGormRepository(testutil.NewDB(t))
	ctx := context.Background()
	if _, err := auth.NewRegister(repo, nil).Execute(ctx, auth.RegisterInput{Username: "alice", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	login := auth.NewLogin(repo, nil)

	if _, err := login.Execute(ctx, auth.LoginInput{Username: "alice", Password: "wrong-pass"}); !httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := login.Execute(ctx, auth.LoginInput{Username: "nobody", Password: "secret1"}); !httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
		t.Fatalf("unknown user: got %v", err)
	}
	if _, err := login.Execute(ctx, auth.LoginInput{Username: "alice"}); !httperr.IsBusiness(err, httperr.CodeMissingCredentials) {
		t.Fatalf("missing password: got %v", err)
	}
}
