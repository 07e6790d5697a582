package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_", "?", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	gdb, err := db.Open(dsn, logger.Silent)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

func CreateUser(t *testing.T, gdb *gorm.DB, role, name string) *models.User {
	t.Helper()

	u := &models.User{
		Name:         name,
		Email:        strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		PasswordHash: "x",
		Phone:        "11999990000",
		Role:         role,
		Active:       true,
	}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

func CreateBarber(t *testing.T, gdb *gorm.DB, name string) *models.User {
	return CreateUser(t, gdb, models.RoleBarber, name)
}

func CreateClient(t *testing.T, gdb *gorm.DB, name string) *models.User {
	return CreateUser(t, gdb, models.RoleClient, name)
}

func CreateService(t *testing.T, gdb *gorm.DB, name, price string) *models.Service {
	t.Helper()

	s := &models.Service{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		DurationMin: 45,
		Active:      true,
	}
	require.NoError(t, gdb.Create(s).Error)
	return s
}

func CreateBooking(
	t *testing.T,
	gdb *gorm.DB,
	client, barber *models.User,
	svc *models.Service,
	date time.Time,
	status string,
) *models.Booking {
	t.Helper()

	b := &models.Booking{
		ClientID:  client.ID,
		BarberID:  barber.ID,
		ServiceID: svc.ID,
		Date:      date.UTC().Truncate(time.Millisecond),
		Status:    status,
	}
	require.NoError(t, gdb.Omit("Client", "Barber", "Service").Create(b).Error)
	return b
}
