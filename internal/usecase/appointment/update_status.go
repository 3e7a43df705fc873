package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/luxstyle-booking/internal/audit"
	domain "github.com/BruksfildServices01/luxstyle-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

// UpdateAppointmentStatus is the admin transition to any status value.
type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	domain.ChangeStatus(ap, status, uc.now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		// reactivating a cancelled appointment whose slot was taken meanwhile
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from": previous,
			"to":   ap.Status,
		},
	})

	return ap, nil
}
