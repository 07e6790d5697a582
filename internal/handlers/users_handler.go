package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UsersHandler struct {
	db *gorm.DB
}

func NewUsersHandler(db *gorm.DB) *UsersHandler {
	return &UsersHandler{db: db}
}

type userSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserSummary(u *models.User) userSummary {
	return userSummary{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// ======================================================
// LIST USERS
// ======================================================
func (h *UsersHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if role := strings.ToUpper(strings.TrimSpace(c.Query("role"))); role != "" {
		if role != models.RoleBarber && role != models.RoleClient {
			httperr.BadRequest(c, "invalid_role", "Perfil inválido.")
			return
		}
		q = q.Where("role = ?", role)
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		respondError(c, "list_users", err)
		return
	}

	out := make([]userSummary, 0, len(users))
	for i := range users {
		out = append(out, newUserSummary(&users[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// BARBER PROFILE
// ======================================================
func (h *UsersHandler) GetBarber(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var barber models.User
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Schedule", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		}).
		Where("id = ? AND role = ? AND active = ?", id, models.RoleBarber, true).
		First(&barber).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		respondError(c, "get_barber", err)
		return
	}

	httpresp.OK(c, gin.H{
		"id":       barber.ID,
		"name":     barber.Name,
		"phone":    barber.Phone,
		"avatar":   barber.Avatar,
		"schedule": barber.Schedule,
	})
}
