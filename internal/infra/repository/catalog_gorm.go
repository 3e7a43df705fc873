package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/luxstyle-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error) {
	q := r.db.WithContext(ctx)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := q.Order("id DESC").Find(&services).Error; err != nil {
		return nil, errors.Wrap(err, "list services")
	}
	return services, nil
}

func (r *CatalogGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *CatalogGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// SaveService writes every column, including a false is_active.
func (r *CatalogGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *CatalogGormRepository) DeleteService(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, id).Error
}

func (r *CatalogGormRepository) CountServiceAppointments(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("service_id = ?", id).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *CatalogGormRepository) ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error) {
	q := r.db.WithContext(ctx)
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var barbers []models.Barber
	if err := q.Order("id DESC").Find(&barbers).Error; err != nil {
		return nil, errors.Wrap(err, "list barbers")
	}
	return barbers, nil
}

func (r *CatalogGormRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *CatalogGormRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *CatalogGormRepository) SaveBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *CatalogGormRepository) DeleteBarber(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Barber{}, id).Error
}

func (r *CatalogGormRepository) CountBarberAppointments(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("barber_id = ?", id).
		Count(&count).Error
	return count, err
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
