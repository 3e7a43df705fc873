package db

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

const adminUsername = "admin"

var defaultServices = []models.Service{
	{Name: "Corte clásico", Description: "Corte tradicional", DurationMinutes: 30, Price: 10.0, IsActive: true},
	{Name: "Afeitado premium", Description: "Afeitado con toalla caliente", DurationMinutes: 40, Price: 15.0, IsActive: true},
	{Name: "Masaje relajante", Description: "Masaje de cuello y hombros", DurationMinutes: 20, Price: 12.0, IsActive: true},
}

var defaultBarbers = []models.Barber{
	{Name: "Carlos", Specialty: "Cortes modernos", IsActive: true},
	{Name: "Luis", Specialty: "Barbas y afeitados", IsActive: true},
	{Name: "Ana", Specialty: "Spa y masajes", IsActive: true},
}

// Seed inserts the default catalog and the admin account. Safe to run on every start.
func Seed(db *gorm.DB, adminPassword string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Service{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count services")
		}
		if count == 0 {
			services := append([]models.Service(nil), defaultServices...)
			if err := tx.Create(&services).Error; err != nil {
				return errors.Wrap(err, "seed services")
			}
			zap.L().Info("seeded default services", zap.Int("count", len(services)))
		}

		if err := tx.Model(&models.Barber{}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count barbers")
		}
		if count == 0 {
			barbers := append([]models.Barber(nil), defaultBarbers...)
			if err := tx.Create(&barbers).Error; err != nil {
				return errors.Wrap(err, "seed barbers")
			}
			zap.L().Info("seeded default barbers", zap.Int("count", len(barbers)))
		}

		if err := tx.Model(&models.User{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
			return errors.Wrap(err, "query admin")
		}
		if count > 0 {
			return nil
		}

		hashed, err := validators.HashPassword(adminPassword)
		if err != nil {
			return errors.Wrap(err, "hash admin password")
		}

		admin := models.User{
			Username:     adminUsername,
			PasswordHash: hashed,
			Role:         models.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return errors.Wrap(err, "create admin")
		}

		zap.L().Info("initialized default admin account", zap.String("username", adminUsername))
		return nil
	})
}
