package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/luxstyle-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Catalog lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, barberID).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) FindClientByUser(
	ctx context.Context,
	userID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *AppointmentGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// AssertSlotFree rejects a start time already held by a non-cancelled
// appointment of the same barber.
func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	barberID uint,
	start time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND start_time = ? AND status <> ?",
			barberID,
			start.UTC(),
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "count slot appointments")
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	ap.StartTime = ap.StartTime.UTC()
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("status", "cancelled_at", "updated_at").
		Updates(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.withRelations(ctx).
		Order("start_time DESC, id DESC").
		Find(&apps).Error; err != nil {
		return nil, errors.Wrap(err, "list appointments")
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.withRelations(ctx).
		Where("client_id = ?", clientID).
		Order("start_time DESC, id DESC").
		Find(&apps).Error; err != nil {
		return nil, errors.Wrap(err, "list client appointments")
	}
	return apps, nil
}

func (r *AppointmentGormRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Barber")
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
