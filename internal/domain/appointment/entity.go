package appointment

import (
	"time"

	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CancelByOwner lets a client cancel one of their own appointments that has not started yet.
func CancelByOwner(ap *models.Appointment, owner *models.Client, now time.Time) error {
	if owner == nil {
		return httperr.ErrBusiness(httperr.CodeNoClientProfile)
	}
	if ap.ClientID != owner.ID {
		return httperr.ErrBusiness(httperr.CodeNotOwner)
	}
	if ap.StartTime.Before(now) {
		return httperr.ErrBusiness(httperr.CodeAppointmentInPast)
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// ChangeStatus is the admin transition: any status, any time.
func ChangeStatus(ap *models.Appointment, status Status, now time.Time) {
	ap.Status = string(status)
	if status.IsCancelled() {
		ap.CancelledAt = &now
	} else {
		ap.CancelledAt = nil
	}
}

// IsCancellable tells the client views whether to offer the cancel action.
func IsCancellable(ap *models.Appointment, now time.Time) bool {
	return !Status(ap.Status).IsCancelled() && !ap.StartTime.Before(now)
}
