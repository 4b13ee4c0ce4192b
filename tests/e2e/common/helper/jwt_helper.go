//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"oasis-backend/internal/handler/dto/request"
	"oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/jwt"
	"oasis-backend/tests/common/dbtest"
	"oasis-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	db  dbtest.DBLike
	cfg config.JWTConfig
}

func NewJWTTestHelper(db dbtest.DBLike, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{db: db, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email, role string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.db, email, role)
}

func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	require.NotEmpty(t, resp.AccessToken, "Access token not found in response")

	return resp.AccessToken
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUser(t, email, role)
	return h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.Duration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
