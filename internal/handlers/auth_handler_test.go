package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	h := NewAuthHandler(db, cfg)
	h.emailCheck = func(email string) bool {
		return email != "ana@invalid.test"
	}

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r, db, cfg
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type authEnvelope struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code"`
	Data      struct {
		User  authUser `json:"user"`
		Token string   `json:"token"`
	} `json:"data"`
}

func decodeAuth(t *testing.T, w *httptest.ResponseRecorder) authEnvelope {
	var out authEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRegister_DefaultsToClient(t *testing.T) {
	r, db, cfg := newAuthRouter(t)

	w := postJSON(r, "/auth/register", gin.H{
		"name":     "Ana",
		"email":    "  Ana@Example.com ",
		"password": "secret1",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeAuth(t, w)
	assert.Equal(t, models.RoleClient, body.Data.User.Role)
	assert.Equal(t, "ana@example.com", body.Data.User.Email)

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "ana@example.com").Error)
	assert.True(t, stored.Active)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(body.Data.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims["sub"])
	assert.Equal(t, models.RoleClient, claims["role"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	req := gin.H{"name": "Ana", "email": "ana@example.com", "password": "secret1"}

	require.Equal(t, http.StatusCreated, postJSON(r, "/auth/register", req).Code)

	w := postJSON(r, "/auth/register", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email_already_registered", decodeAuth(t, w).ErrorCode)
}

func TestRegister_Rejects(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	cases := []struct {
		name string
		body gin.H
		code string
	}{
		{"short password", gin.H{"name": "Ana", "email": "ana@example.com", "password": "123"}, "validation_error"},
		{"unknown role", gin.H{"name": "Ana", "email": "ana@example.com", "password": "secret1", "role": "ADMIN"}, "validation_error"},
		{"email domain", gin.H{"name": "Ana", "email": "ana@invalid.test", "password": "secret1"}, "invalid_email_domain"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/auth/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, decodeAuth(t, w).ErrorCode)
		})
	}
}

func TestLogin(t *testing.T) {
	r, db, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/auth/register", gin.H{
		"name": "Bruno", "email": "bruno@example.com", "password": "secret1", "role": "BARBER",
	}).Code)

	w := postJSON(r, "/auth/login", gin.H{"email": "BRUNO@example.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeAuth(t, w)
	assert.Equal(t, models.RoleBarber, body.Data.User.Role)
	assert.NotEmpty(t, body.Data.Token)

	w = postJSON(r, "/auth/login", gin.H{"email": "bruno@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeAuth(t, w).ErrorCode)

	w = postJSON(r, "/auth/login", gin.H{"email": "nobody@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decodeAuth(t, w).ErrorCode)

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "bruno@example.com").
		Update("active", false).Error)

	w = postJSON(r, "/auth/login", gin.H{"email": "bruno@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "user_inactive", decodeAuth(t, w).ErrorCode)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/auth/register", gin.H{
		"name": "Carla", "email": " Carla@Example.com", "password": "secret1",
	}).Code)

	w := postJSON(r, "/auth/login", gin.H{"email": "  CARLA@example.com  ", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "carla@example.com", decodeAuth(t, w).Data.User.Email)

	w = postJSON(r, "/auth/login", gin.H{"email": "   ", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeAuth(t, w).ErrorCode)
}
