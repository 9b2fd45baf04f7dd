package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	userapp "masttrack/internal/application/user"
	"masttrack/internal/domain/user"
	"masttrack/internal/infrastructure/auth"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/infrastructure/repository"
	"masttrack/internal/interfaces/http/middleware"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/config"
	"masttrack/internal/shared/logger"
)

func setupSessionTest(t *testing.T, allowlist []string) (*gin.Engine, *auth.SessionTokenService, user.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.UserProfileModel{}))

	log := logger.NewLogger()
	profiles := repository.NewUserProfileRepository(database, log)
	users := userapp.NewService(profiles, &config.AuthConfig{Allowlist: allowlist}, log)
	tokens := auth.NewSessionTokenService("test-secret", 24)

	session := middleware.NewSessionMiddleware(tokens, users, config.CookieConfig{Path: "/"}, log)

	engine := gin.New()
	engine.GET("/protected", session.RequireSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    middleware.UserID(c),
			"email": middleware.UserEmail(c),
		})
	})

	return engine, tokens, profiles
}

func TestRequireSession(t *testing.T) {
	t.Run("missing cookie is rejected", func(t *testing.T) {
		engine, _, _ := setupSessionTest(t, []string{"ops@example.com"})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		engine, tokens, _ := setupSessionTest(t, []string{"ops@example.com"})

		token, err := tokens.Issue("sub-1", "ops@example.com", "Ops")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "mt_session", Value: token + "x"})
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session populates identity", func(t *testing.T) {
		engine, tokens, profiles := setupSessionTest(t, []string{"ops@example.com"})

		require.NoError(t, profiles.Create(t.Context(), &user.Profile{
			ID: "sub-1", Email: "ops@example.com", Role: authorization.RoleEditor,
		}))

		token, err := tokens.Issue("sub-1", "ops@example.com", "Ops")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "mt_session", Value: token})
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"id":"sub-1"`)
		assert.Contains(t, rec.Body.String(), `"email":"ops@example.com"`)
	})

	t.Run("allow-list removal revokes a live session", func(t *testing.T) {
		engine, tokens, profiles := setupSessionTest(t, []string{"gone@example.com"})

		require.NoError(t, profiles.Create(t.Context(), &user.Profile{
			ID: "sub-2", Email: "gone@example.com", Role: authorization.RoleViewer,
		}))

		token, err := tokens.Issue("sub-2", "gone@example.com", "")
		require.NoError(t, err)

		// Valid token, but the email was removed from the allow-list.
		engine2, _, _ := setupSessionTest(t, []string{"someone-else@example.com"})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "mt_session", Value: token})
		rec := httptest.NewRecorder()
		engine2.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		// The original deployment still accepts it.
		rec = httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
