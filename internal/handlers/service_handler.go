package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Description string           `json:"description" binding:"max=255"`
	DurationMin int              `json:"duration" binding:"required,min=1"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=255"`
	DurationMin *int             `json:"duration,omitempty" binding:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

// List shows active services; barbers may pass ?all=true to include inactive ones.
func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	all := c.Query("all") == "true" && principal(c).IsBarber()
	if !all {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		respondError(c, "list_services", err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if !req.Price.IsPositive() {
		httperr.BadRequest(c, "invalid_price", "Preço inválido.")
		return
	}

	svc := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price.Round(2),
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		respondError(c, "create_service", err)
		return
	}

	httpresp.Created(c, "Serviço criado.", svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		respondError(c, "update_service", err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DurationMin != nil {
		updates["duration_min"] = *req.DurationMin
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		updates["price"] = req.Price.Round(2)
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := h.db.WithContext(c.Request.Context()).
			Model(&svc).
			Updates(updates).Error; err != nil {
			respondError(c, "update_service", err)
			return
		}
	}

	if err := h.db.WithContext(c.Request.Context()).First(&svc, "id = ?", id).Error; err != nil {
		respondError(c, "update_service", err)
		return
	}

	httpresp.Message(c, "Serviço atualizado.", svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		if httperr.IsForeignKeyViolation(res.Error) {
			httperr.BadRequest(c, "service_in_use", "Serviço possui agendamentos. Desative-o em vez de excluir.")
			return
		}
		respondError(c, "delete_service", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.Message(c, "Serviço excluído.", nil)
}
