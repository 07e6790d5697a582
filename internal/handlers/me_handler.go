package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

type AvatarUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error)
}

type MeHandler struct {
	db      *gorm.DB
	avatars AvatarUploader
}

// NewMeHandler accepts a nil uploader when avatar storage is not configured.
func NewMeHandler(db *gorm.DB, avatars AvatarUploader) *MeHandler {
	return &MeHandler{db: db, avatars: avatars}
}

type meResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt string    `json:"created_at"`
}

func newMeResponse(u *models.User) meResponse {
	return meResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC().Format(isoMillis),
	}
}

func (h *MeHandler) load(c *gin.Context) (*models.User, bool) {
	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		First(&user, "id = ?", principal(c).UserID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return nil, false
		}
		respondError(c, "get_me", err)
		return nil, false
	}
	return &user, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.load(c)
	if !ok {
		return
	}

	httpresp.OK(c, newMeResponse(user))
}

func (h *MeHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "avatar_upload_disabled", "Upload de foto indisponível.")
		return
	}

	user, ok := h.load(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxAvatarBytes+1<<20)

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "avatar_required", "Envie a imagem no campo avatar.")
		return
	}
	if file.Size > storage.MaxAvatarBytes {
		httperr.BadRequest(c, "avatar_too_large", "A imagem deve ter no máximo 5 MB.")
		return
	}

	f, err := file.Open()
	if err != nil {
		respondError(c, "upload_avatar", err)
		return
	}
	defer f.Close()

	url, err := h.avatars.Upload(c.Request.Context(), user.ID, f)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidImage) {
			httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado. Use PNG ou JPEG.")
			return
		}
		respondError(c, "upload_avatar", err)
		return
	}

	if err := h.db.WithContext(c.Request.Context()).
		Model(user).
		Update("avatar", url).Error; err != nil {
		respondError(c, "upload_avatar", err)
		return
	}
	user.Avatar = url

	httpresp.Message(c, "Foto atualizada.", newMeResponse(user))
}
