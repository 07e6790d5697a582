package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDay struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Active  bool   `json:"active"`
	Start   string `json:"start" binding:"required_if=Active true,hhmm"`
	End     string `json:"end" binding:"required_if=Active true,hhmm"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDay `json:"days" binding:"required,max=7,dive"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	var days []models.BarberSchedule
	if err := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ?", principal(c).UserID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		respondError(c, "get_schedule", err)
		return
	}

	httpresp.List(c, days)
}

// Update replaces the whole week.
func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := principal(c).UserID

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	seen := make(map[int]bool, len(req.Days))
	toCreate := make([]models.BarberSchedule, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Dia da semana repetido.")
			return
		}
		seen[d.Weekday] = true

		// HH:MM compares correctly as text
		if d.Active && d.Start >= d.End {
			httperr.BadRequest(c, "invalid_schedule_range", "O horário de início deve ser antes do fim.")
			return
		}

		toCreate = append(toCreate, models.BarberSchedule{
			BarberID: barberID,
			Weekday:  d.Weekday,
			Active:   d.Active,
			Start:    d.Start,
			End:      d.End,
		})
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.BarberSchedule{}).Error; err != nil {
			return err
		}
		if len(toCreate) == 0 {
			return nil
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		respondError(c, "update_schedule", err)
		return
	}

	httpresp.Message(c, "Horários atualizados.", toCreate)
}
