package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assessment-advisor-be/internal/dto"
	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminService struct {
	accepted int
	stats    dto.StatsResponse
}

func (s *stubAdminService) Reindex(ctx context.Context) (int, error) { return s.accepted, nil }

func (s *stubAdminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return []logger.LogEntry{{Level: "INFO", Message: "Catalog indexed"}}, nil
}

func (s *stubAdminService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	return &s.stats, nil
}

func newAdminApp(svc *stubAdminService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAdminController(svc).RegisterRoutes(app)
	return app
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAdminApp(&stubAdminService{})

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/admin/v1/reindex", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAdminRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAdminApp(&stubAdminService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret"))

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestAdminReindexAccepted(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAdminApp(&stubAdminService{accepted: 12})

	req := httptest.NewRequest(http.MethodPost, "/admin/v1/reindex", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))

	status, body := doJSON(t, app, req)

	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["accepted"])
}

func TestAdminStats(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAdminApp(&stubAdminService{stats: dto.StatsResponse{Assessments: 12, Embeddings: 37}})

	req := httptest.NewRequest(http.MethodGet, "/admin/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))

	status, body := doJSON(t, app, req)

	assert.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["assessments"])
	assert.Equal(t, float64(37), data["embeddings"])
}
