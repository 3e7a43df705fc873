package db

import (
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/luxstyle-booking/internal/config"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
)

const sqliteScheme = "sqlite://"

// One active appointment per barber and start time. Cancelled rows free the slot.
const slotIndexSQL = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
	ON appointments (barber_id, start_time)
	WHERE status <> 'cancelada'
`

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}

	if err := Migrate(db); err != nil {
		zap.L().Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Open(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.DBDebug {
		logLevel = gormlogger.Info
	}

	isSQLite := strings.HasPrefix(cfg.DBUrl, sqliteScheme)

	var dialector gorm.Dialector
	if isSQLite {
		dialector = sqlite.Open(sqliteDSN(strings.TrimPrefix(cfg.DBUrl, sqliteScheme)))
	} else {
		dialector = postgres.Open(cfg.DBUrl)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    !isSQLite,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	if isSQLite {
		// single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	zap.L().Info("database connected", zap.String("dialect", db.Dialector.Name()))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.Tables...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}

	if err := db.Exec(slotIndexSQL).Error; err != nil {
		return errors.Wrap(err, "create slot index")
	}

	return nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
