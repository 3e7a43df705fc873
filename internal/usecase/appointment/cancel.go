package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	domain "github.com/BruksfildServices01/luxstyle-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

// CancelOwnAppointment is the client-side cancel of /mis-citas.
type CancelOwnAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelOwnAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelOwnAppointment {
	return &CancelOwnAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelOwnAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	client, err := uc.repo.FindClientByUser(ctx, userID)
	if err != nil {
		if !httperr.IsNotFound(err) {
			return nil, err
		}
		return nil, httperr.ErrBusiness(httperr.CodeNoClientProfile)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	if err := domain.CancelByOwner(ap, client, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
