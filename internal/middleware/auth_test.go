package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/centsible/centsible/internal/database"
	"github.com/centsible/centsible/internal/repository"
	"github.com/centsible/centsible/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(t *testing.T, tokenTTL time.Duration) (*gin.Engine, *services.AuthService) {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, db, "test-secret", tokenTTL)
	authMiddleware := NewAuthMiddleware(authService)

	router := gin.New()
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("session-secret"))))

	router.POST("/session", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("user_id", uint(7))
		assert.NoError(t, session.Save())
		c.Status(http.StatusOK)
	})

	router.GET("/me", authMiddleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})

	return router, authService
}

func sessionCookie(t *testing.T, router *gin.Engine) *http.Cookie {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/session", nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	assert.NotEmpty(t, cookies)
	return cookies[0]
}

func TestRequireAuth_NoCredentials(t *testing.T) {
	router, _ := setupAuthRouter(t, time.Hour)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "unauthenticated")
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	router, authService := setupAuthRouter(t, time.Hour)

	token, err := authService.IssueToken(7)
	assert.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user_id":7`)
}

func TestRequireAuth_MalformedAuthorizationHeader(t *testing.T) {
	router, _ := setupAuthRouter(t, time.Hour)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid_token")
}

func TestRequireAuth_ExpiredBearerToken(t *testing.T) {
	router, authService := setupAuthRouter(t, -time.Hour)

	token, err := authService.IssueToken(7)
	assert.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid_token")
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	router, _ := setupAuthRouter(t, time.Hour)
	cookie := sessionCookie(t, router)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.AddCookie(cookie)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"user_id":7`)
}

// A present bearer token is authoritative. An expired token must fail the
// request even when a perfectly valid session cookie rides along.
func TestRequireAuth_ExpiredBearerBeatsValidSession(t *testing.T) {
	router, authService := setupAuthRouter(t, -time.Hour)
	cookie := sessionCookie(t, router)

	token, err := authService.IssueToken(7)
	assert.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	request.AddCookie(cookie)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid_token")
}

func TestCurrentUserID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), CurrentUserID(c))
}
