package main

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// seed wipes the database and loads one barber, one client and two services.
func main() {
	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := db.Transaction(seed); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Println("seed finished")
}

func seed(tx *gorm.DB) error {
	log.Println("clearing existing data")
	for _, m := range []any{
		&models.AuditLog{},
		&models.Transaction{},
		&models.Booking{},
		&models.BarberSchedule{},
		&models.Service{},
		&models.User{},
	} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	barber := models.User{
		Name:         "Ronaldinho",
		Email:        "barbeiro@primosbarber.com",
		PasswordHash: string(hash),
		Phone:        "(34) 99813-5703",
		Avatar:       "https://i.pravatar.cc/150?img=33",
		Role:         models.RoleBarber,
		Active:       true,
	}
	if err := tx.Create(&barber).Error; err != nil {
		return err
	}
	log.Printf("barber created: %s", barber.Email)

	// Monday to Friday 08:00-20:00, Saturday 08:00-14:00, closed on Sunday.
	schedule := []models.BarberSchedule{{BarberID: barber.ID, Weekday: 0}}
	for wd := 1; wd <= 5; wd++ {
		schedule = append(schedule, models.BarberSchedule{
			BarberID: barber.ID, Weekday: wd, Start: "08:00", End: "20:00", Active: true,
		})
	}
	schedule = append(schedule, models.BarberSchedule{
		BarberID: barber.ID, Weekday: 6, Start: "08:00", End: "14:00", Active: true,
	})
	if err := tx.Create(&schedule).Error; err != nil {
		return err
	}

	client := models.User{
		Name:         "Cliente Teste",
		Email:        "cliente@teste.com",
		PasswordHash: string(hash),
		Avatar:       "https://i.pravatar.cc/150?img=12",
		Role:         models.RoleClient,
		Active:       true,
	}
	if err := tx.Create(&client).Error; err != nil {
		return err
	}
	log.Printf("client created: %s", client.Email)

	services := []models.Service{
		{
			Name:        "Corte Degradê",
			Price:       decimal.RequireFromString("40.00"),
			DurationMin: 45,
			Description: "Na régua",
			Active:      true,
		},
		{
			Name:        "Barba Lenhador",
			Price:       decimal.RequireFromString("30.00"),
			DurationMin: 30,
			Description: "Modelada com toalha quente",
			Active:      true,
		},
	}
	if err := tx.Create(&services).Error; err != nil {
		return err
	}
	log.Printf("%d services created", len(services))

	return nil
}
