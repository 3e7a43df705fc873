package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/luxstyle-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/luxstyle-booking/internal/dto"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

// ======================================================
// ADMIN
// ======================================================

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return toListDTOs(appointments, uc.loc, uc.now()), nil
}

// ======================================================
// CLIENT
// ======================================================

type ListClientAppointments struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewListClientAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListClientAppointments {
	return &ListClientAppointments{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// Execute lists the appointments of the user's client profile; users who never booked get none.
func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentListDTO, error) {

	client, err := uc.repo.FindClientByUser(ctx, userID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return []dto.AppointmentListDTO{}, nil
		}
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return toListDTOs(appointments, uc.loc, uc.now()), nil
}

func toListDTOs(
	appointments []models.Appointment,
	loc *time.Location,
	now time.Time,
) []dto.AppointmentListDTO {

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			StartTime:   ap.StartTime.In(loc),
			Status:      ap.Status,
			StatusLabel: domain.Status(ap.Status).Label(),
			ClientName:  ap.Client.FullName,
			ClientPhone: ap.Client.Phone,
			ClientEmail: ap.Client.Email,
			ServiceName: ap.Service.Name,
			BarberName:  ap.Barber.Name,
			Notes:       ap.Notes,
			Cancellable: domain.IsCancellable(ap, now),
		})
	}
	return out
}
