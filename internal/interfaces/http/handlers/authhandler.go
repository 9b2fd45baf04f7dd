package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userapp "masttrack/internal/application/user"
	"masttrack/internal/infrastructure/auth"
	"masttrack/internal/interfaces/http/middleware"
	"masttrack/internal/shared/config"
	apperrors "masttrack/internal/shared/errors"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils"
)

// Short-lived cookies carrying the OAuth round-trip state.
const (
	oauthStateCookie    = "mt_oauth_state"
	oauthVerifierCookie = "mt_oauth_verifier"
	oauthCookieMaxAge   = 600
)

// AuthHandler drives the login round-trip and session lifecycle.
type AuthHandler struct {
	oauth   *auth.GoogleOAuthClient
	tokens  *auth.SessionTokenService
	users   *userapp.Service
	server  config.ServerConfig
	cookie  config.CookieConfig
	expSecs int
	logger  logger.Interface
}

func NewAuthHandler(
	oauth *auth.GoogleOAuthClient,
	tokens *auth.SessionTokenService,
	users *userapp.Service,
	serverCfg config.ServerConfig,
	authCfg config.AuthConfig,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		oauth:   oauth,
		tokens:  tokens,
		users:   users,
		server:  serverCfg,
		cookie:  authCfg.Cookie,
		expSecs: authCfg.JWT.SessionExpHours * 3600,
		logger:  log,
	}
}

// Login starts the OAuth flow: generate state and PKCE verifier, stash both
// in short-lived cookies and redirect to the provider.
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := auth.GenerateState()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	authURL, verifier, err := h.oauth.GetAuthURL(state)
	if err != nil {
		h.logger.Errorw("failed to build auth URL", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetCookie(oauthStateCookie, state, oauthCookieMaxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
	c.SetCookie(oauthVerifierCookie, verifier, oauthCookieMaxAge, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)

	c.Redirect(http.StatusFound, authURL)
}

// Callback completes the flow: validate state, exchange the code, resolve
// the profile through the allow-list gate and issue the session cookie.
func (h *AuthHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	storedState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != storedState {
		utils.ErrorResponse(c, http.StatusUnauthorized, "state mismatch")
		return
	}

	verifier, err := c.Cookie(oauthVerifierCookie)
	if err != nil || verifier == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing PKCE verifier")
		return
	}

	c.SetCookie(oauthStateCookie, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
	c.SetCookie(oauthVerifierCookie, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)

	code := c.Query("code")
	if code == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing authorization code")
		return
	}

	ctx := c.Request.Context()
	accessToken, err := h.oauth.ExchangeCode(ctx, code, verifier)
	if err != nil {
		h.logger.Errorw("code exchange failed", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "authorization failed")
		return
	}

	info, err := h.oauth.GetUserInfo(ctx, accessToken)
	if err != nil {
		h.logger.Errorw("userinfo fetch failed", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "authorization failed")
		return
	}
	if !info.EmailVerified {
		utils.ErrorResponse(c, http.StatusUnauthorized, "email not verified")
		return
	}

	profile, err := h.users.ResolveProfile(ctx, userapp.Identity{
		Subject:  info.Subject,
		Email:    info.Email,
		FullName: info.Name,
	})
	if err != nil {
		if apperrors.IsUnauthorized(err) && h.server.LoginURL != "" {
			c.Redirect(http.StatusFound, h.server.LoginURL+"?error=unauthorized")
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	fullName := ""
	if profile.FullName != nil {
		fullName = *profile.FullName
	}
	session, err := h.tokens.Issue(profile.ID, profile.Email, fullName)
	if err != nil {
		h.logger.Errorw("session issue failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookie, session, h.expSecs)
	c.Redirect(http.StatusFound, h.server.BaseURL+"/")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookie)
	utils.OKResponse(c, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	id := middleware.UserID(c)
	profile, err := h.users.GetProfile(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, profile)
}
