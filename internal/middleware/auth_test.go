package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edupath_backend/internal/config"
	"edupath_backend/internal/model"
	"edupath_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func testRouter(cfg *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/", AuthMiddleware(cfg))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return router
}

func tokenFor(t *testing.T, cfg *config.Config, role model.UserRole) string {
	t.Helper()
	user := &model.User{Role: role, Email: "u@example.com"}
	user.ID = 7
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)
	return token
}

func request(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := testRouter(testConfig())

	w := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	router := testRouter(testConfig())

	w := request(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := testConfig()
	other := testConfig()
	other.JWT.Secret = "another-secret-another-secret-12345"

	router := testRouter(cfg)
	w := request(router, "Bearer "+tokenFor(t, other, model.Student))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg)

	w := request(router, "Bearer "+tokenFor(t, cfg, model.Student))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestRoleMiddlewareEnforcesAllowList(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg, model.Teacher)

	w := request(router, "Bearer "+tokenFor(t, cfg, model.Student))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(router, "Bearer "+tokenFor(t, cfg, model.Teacher))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddlewareAdminAlwaysPasses(t *testing.T) {
	cfg := testConfig()
	router := testRouter(cfg, model.Teacher)

	w := request(router, "Bearer "+tokenFor(t, cfg, model.Admin))
	assert.Equal(t, http.StatusOK, w.Code)
}
