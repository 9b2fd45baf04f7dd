package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	assetapp "masttrack/internal/application/asset"
	exportapp "masttrack/internal/application/export"
	siteapp "masttrack/internal/application/site"
	storeapp "masttrack/internal/application/store"
	userapp "masttrack/internal/application/user"
	"masttrack/internal/infrastructure/auth"
	"masttrack/internal/infrastructure/config"
	"masttrack/internal/infrastructure/repository"
	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
	"masttrack/internal/interfaces/http/routes"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// Router assembles the repositories, services, middleware and handlers into
// a gin engine. Construction is plain wiring so the seams stay visible.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	session *middleware.SessionMiddleware
	auth    *handlers.AuthHandler
	sites   *handlers.SiteHandler
	assets  *handlers.AssetHandler
	store   *handlers.StoreHandler
	admin   *handlers.AdminHandler
	health  *handlers.HealthHandler
}

func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	siteRepo := repository.NewSiteRepository(database, log.Named("site-repo"))
	assetRepo := repository.NewAssetRepository(database, log.Named("asset-repo"))
	categoryRepo := repository.NewCategoryRepository(database, log.Named("category-repo"))
	subcategoryRepo := repository.NewSubcategoryRepository(database, log.Named("subcategory-repo"))
	storeRepo := repository.NewStoreItemRepository(database, log.Named("store-repo"))
	profileRepo := repository.NewUserProfileRepository(database, log.Named("profile-repo"))
	auditRepo := repository.NewAuditLogRepository(database, log.Named("audit-repo"))

	tm := db.NewTransactionManager(database)

	siteService := siteapp.NewService(siteRepo, assetRepo, auditRepo, tm, log.Named("site-service"))
	assetService := assetapp.NewService(assetRepo, categoryRepo, subcategoryRepo, siteRepo, log.Named("asset-service"))
	storeService := storeapp.NewService(storeRepo, log.Named("store-service"))
	userService := userapp.NewService(profileRepo, &cfg.Auth, log.Named("user-service"))
	exportService := exportapp.NewService(siteRepo, assetRepo, categoryRepo, subcategoryRepo, storeRepo, log.Named("export-service"))

	oauthClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)
	tokenService := auth.NewSessionTokenService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.SessionExpHours)

	session := middleware.NewSessionMiddleware(tokenService, userService, cfg.Auth.Cookie, log.Named("session"))

	return &Router{
		engine:  gin.New(),
		cfg:     cfg,
		logger:  log,
		session: session,
		auth:    handlers.NewAuthHandler(oauthClient, tokenService, userService, cfg.Server, cfg.Auth, log.Named("auth-handler")),
		sites:   handlers.NewSiteHandler(siteService, assetService, exportService, log.Named("site-handler")),
		assets:  handlers.NewAssetHandler(assetService, log.Named("asset-handler")),
		store:   handlers.NewStoreHandler(storeService, exportService, log.Named("store-handler")),
		admin:   handlers.NewAdminHandler(userService, log.Named("admin-handler")),
		health:  handlers.NewHealthHandler(),
	}
}

// SetupRoutes installs the middleware chain and mounts every route group.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.health.Check)

	// The application root always bounces to the login page.
	loginURL := r.cfg.Server.LoginURL
	if loginURL == "" {
		loginURL = "/auth/login"
	}
	r.engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, loginURL)
	})

	routes.RegisterAuthRoutes(r.engine, r.auth, r.session)

	api := r.engine.Group("/api", r.session.RequireSession())
	routes.RegisterSiteRoutes(api, r.sites, r.session)
	routes.RegisterAssetRoutes(api, r.assets, r.session)
	routes.RegisterStoreRoutes(api, r.store, r.session)
	routes.RegisterAdminRoutes(api, r.admin, r.session)
}

// GetEngine exposes the gin engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
