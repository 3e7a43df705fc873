package auth

import (
	"context"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	"github.com/BruksfildServices01/luxstyle-booking/internal/domain/account"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

type LoginInput struct {
	Username string
	Password string
}

type Login struct {
	repo  account.Repository
	audit *audit.Dispatcher
}

func NewLogin(
	repo account.Repository,
	audit *audit.Dispatcher,
) *Login {
	return &Login{
		repo:  repo,
		audit: audit,
	}
}

// Execute checks the credentials; unknown users and wrong passwords fail the same way.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*models.User, error) {

	username, password := validators.NormalizeCredentials(in.Username, in.Password)
	if username == "" || password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingCredentials)
	}

	user, err := uc.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if !validators.CheckPassword(user.PasswordHash, password) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	return user, nil
}
