package catalog

import (
	"context"

	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context, onlyActive bool) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	SaveService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
	CountServiceAppointments(ctx context.Context, id uint) (int64, error)

	// -------- Barbers --------
	ListBarbers(ctx context.Context, onlyActive bool) ([]models.Barber, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	SaveBarber(ctx context.Context, b *models.Barber) error
	DeleteBarber(ctx context.Context, id uint) error
	CountBarberAppointments(ctx context.Context, id uint) (int64, error)
}
