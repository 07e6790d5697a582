package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config

	// emailCheck is swapped in tests to avoid DNS lookups.
	emailCheck func(email string) bool
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:         db,
		config:     cfg,
		emailCheck: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"max=20"`
	Role     string `json:"role" binding:"omitempty,oneof=CLIENT BARBER"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
}

type authResponse struct {
	User  authUser `json:"user"`
	Token string   `json:"token"`
}

func newAuthUser(u *models.User) authUser {
	return authUser{
		ID:     u.ID.String(),
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
		Role:   u.Role,
	}
}

// bindNormalized decodes the JSON body, lowercases and trims email,
// and only then runs the binding rules.
func bindNormalized(c *gin.Context, req any, email *string) error {
	if c.Request.Body == nil {
		return errors.New("invalid request")
	}
	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		return err
	}
	*email = strings.ToLower(strings.TrimSpace(*email))
	return binding.Validator.ValidateStruct(req)
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindNormalized(c, &req, &req.Email); err != nil {
		httperr.Validation(c, err)
		return
	}

	email := req.Email

	if !h.emailCheck(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		respondError(c, "register", err)
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, "register", err)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         role,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "email_already_registered", "E-mail já cadastrado.")
			return
		}
		respondError(c, "register", err)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		respondError(c, "register", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Conta criada com sucesso.",
		"data":    authResponse{User: newAuthUser(&user), Token: token},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindNormalized(c, &req, &req.Email); err != nil {
		httperr.Validation(c, err)
		return
	}

	email := req.Email

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		respondError(c, "login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	if !user.Active {
		httperr.Unauthorized(c, "user_inactive", "Usuário inativo.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    authResponse{User: newAuthUser(&user), Token: token},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  now.Add(h.config.JWTTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
