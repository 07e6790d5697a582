package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// One live booking per barber and instant. Cancelled rows free the slot.
const bookingSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_barber_slot
	ON bookings (barber_id, date)
	WHERE status <> 'CANCELLED'
`

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl, logger.Warn)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open picks the dialect from the DSN: postgres URLs go to Postgres,
// anything else is treated as a SQLite file (local development).
func Open(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		gormCfg.PrepareStmt = true
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}

	log.Println("using sqlite database:", dsn)
	return gorm.Open(sqlite.Open(dsn), gormCfg)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.BarberSchedule{},
		&models.Service{},
		&models.Booking{},
		&models.Transaction{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(bookingSlotIndex).Error
}
