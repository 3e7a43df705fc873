package auth

import (
	"context"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	"github.com/BruksfildServices01/luxstyle-booking/internal/domain/account"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Username string
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo  account.Repository
	audit *audit.Dispatcher
}

func NewRegister(
	repo account.Repository,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.User, error) {

	username, password := validators.NormalizeCredentials(in.Username, in.Password)
	if err := validators.ValidateRegistration(username, password); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Username livre?
	// --------------------------------------------------
	if _, err := uc.repo.FindUserByUsername(ctx, username); err == nil {
		return nil, httperr.ErrBusiness(httperr.CodeUsernameTaken)
	} else if !httperr.IsNotFound(err) {
		return nil, err
	}

	hashed, err := validators.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         models.RoleClient,
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeUsernameTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
