package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userapp "masttrack/internal/application/user"
	"masttrack/internal/infrastructure/auth"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/config"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils"
)

// Context keys set by the session middleware.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

// SessionMiddleware verifies the session cookie, re-checks the allow-list
// and re-derives the role from the stored profile on every request.
type SessionMiddleware struct {
	tokens *auth.SessionTokenService
	users  *userapp.Service
	cookie config.CookieConfig
	logger logger.Interface
}

func NewSessionMiddleware(
	tokens *auth.SessionTokenService,
	users *userapp.Service,
	cookie config.CookieConfig,
	log logger.Interface,
) *SessionMiddleware {
	return &SessionMiddleware{
		tokens: tokens,
		users:  users,
		cookie: cookie,
		logger: log,
	}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionCookie(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing session")
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("session verification failed", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		// Removal from the allow-list takes effect on the next request,
		// not at the next login.
		if !m.users.IsAllowed(claims.Email) {
			utils.ClearSessionCookie(c, m.cookie)
			utils.ErrorResponse(c, http.StatusUnauthorized, "email not authorized")
			c.Abort()
			return
		}

		profile, err := m.users.GetProfile(c.Request.Context(), claims.Subject)
		if err != nil {
			utils.ClearSessionCookie(c, m.cookie)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if m.tokens.ShouldRefresh(claims) {
			if refreshed, err := m.tokens.Refresh(claims); err == nil {
				utils.SetSessionCookie(c, m.cookie, refreshed, 0)
			}
		}

		c.Set(ContextUserID, profile.ID)
		c.Set(ContextUserEmail, profile.Email)
		c.Set(ContextUserRole, profile.Role)

		c.Next()
	}
}

// RequireEditor gates mutations to ADMIN and EDITOR.
func (m *SessionMiddleware) RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !roleFromContext(c).CanEdit() {
			utils.ErrorResponse(c, http.StatusForbidden, "editor access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates role management to ADMIN.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !roleFromContext(c).IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func roleFromContext(c *gin.Context) authorization.Role {
	v, ok := c.Get(ContextUserRole)
	if !ok {
		return authorization.RoleViewer
	}
	role, ok := v.(authorization.Role)
	if !ok {
		return authorization.RoleViewer
	}
	return role
}

// UserID returns the authenticated profile id from the context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// UserEmail returns the authenticated email from the context.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}
