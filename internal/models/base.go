package models

import "github.com/google/uuid"

const (
	RoleClient = "CLIENT"
	RoleBarber = "BARBER"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
