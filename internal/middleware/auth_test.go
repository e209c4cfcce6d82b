package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gearshare/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrincipalRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Principal(jwtService))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, Username(c))
	})
	router.POST("/protected", RequirePrincipal(), func(c *gin.Context) {
		c.String(http.StatusOK, Username(c))
	})
	return router
}

func doRequest(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPrincipal_HeaderWinsOverToken(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.GenerateToken("bob", "User")
	require.NoError(t, err)

	w := doRequest(newPrincipalRouter(jwtService), http.MethodGet, "/whoami", map[string]string{
		"X-Username":    "alice",
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestPrincipal_LegacyHeaderAndQuery(t *testing.T) {
	router := newPrincipalRouter(nil)

	w := doRequest(router, http.MethodGet, "/whoami", map[string]string{"reserver_username": "carol"})
	assert.Equal(t, "carol", w.Body.String())

	w = doRequest(router, http.MethodGet, "/whoami?owner_username=dave", nil)
	assert.Equal(t, "dave", w.Body.String())
}

func TestPrincipal_FallsBackToToken(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.GenerateToken("erin", "User")
	require.NoError(t, err)

	w := doRequest(newPrincipalRouter(jwtService), http.MethodGet, "/whoami", map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, "erin", w.Body.String())
}

func TestRequirePrincipal_Missing(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)

	w := doRequest(newPrincipalRouter(jwtService), http.MethodPost, "/protected", map[string]string{
		"Authorization": "Bearer not-a-token",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PRINCIPAL_REQUIRED")
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test-secret-123", time.Hour)
	validToken, _ := jwtService.GenerateToken("alice", "User")

	router := gin.New()
	router.Use(JWTAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": Username(c), "role": c.GetString(RoleKey)})
	})

	w := doRequest(router, http.MethodGet, "/protected", map[string]string{"Authorization": "Bearer " + validToken})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "User")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := gin.New()
	router.Use(JWTAuth(jwt.New("wrong-secret", time.Hour)))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("This handler should not be reached")
	})

	w := doRequest(router, http.MethodGet, "/protected", map[string]string{"Authorization": "Bearer invalid-jwt-here"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:5173"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(router, http.MethodOptions, "/x", map[string]string{"Origin": "http://localhost:5173"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
