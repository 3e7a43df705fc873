package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to a single database transaction.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Catalog lookups --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.Barber, error)

	// -------- Client --------
	FindClientByUser(
		ctx context.Context,
		userID uint,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Appointment (create / conflict) --------
	AssertSlotFree(
		ctx context.Context,
		barberID uint,
		start time.Time,
	) error

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
