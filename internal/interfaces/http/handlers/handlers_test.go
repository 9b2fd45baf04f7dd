package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	assetapp "masttrack/internal/application/asset"
	exportapp "masttrack/internal/application/export"
	siteapp "masttrack/internal/application/site"
	storeapp "masttrack/internal/application/store"
	userapp "masttrack/internal/application/user"
	"masttrack/internal/domain/user"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/infrastructure/repository"
	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
	"masttrack/internal/interfaces/http/routes"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/config"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

type testEnv struct {
	engine   *gin.Engine
	db       *gorm.DB
	profiles user.Repository
}

// identity injected by the test middleware in place of a real session.
type testIdentity struct {
	id    string
	email string
	role  authorization.Role
}

func newTestEnv(t *testing.T, who testIdentity) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&models.SiteModel{},
		&models.CategoryModel{},
		&models.SubcategoryModel{},
		&models.AssetModel{},
		&models.StoreItemModel{},
		&models.UserProfileModel{},
		&models.AuditLogModel{},
	))

	log := logger.NewLogger()
	siteRepo := repository.NewSiteRepository(database, log)
	assetRepo := repository.NewAssetRepository(database, log)
	categoryRepo := repository.NewCategoryRepository(database, log)
	subcategoryRepo := repository.NewSubcategoryRepository(database, log)
	storeRepo := repository.NewStoreItemRepository(database, log)
	profileRepo := repository.NewUserProfileRepository(database, log)
	auditRepo := repository.NewAuditLogRepository(database, log)
	tm := db.NewTransactionManager(database)

	authCfg := &config.AuthConfig{
		Allowlist:   []string{who.email},
		AdminEmails: []string{},
	}

	siteService := siteapp.NewService(siteRepo, assetRepo, auditRepo, tm, log)
	assetService := assetapp.NewService(assetRepo, categoryRepo, subcategoryRepo, siteRepo, log)
	storeService := storeapp.NewService(storeRepo, log)
	userService := userapp.NewService(profileRepo, authCfg, log)
	exportService := exportapp.NewService(siteRepo, assetRepo, categoryRepo, subcategoryRepo, storeRepo, log)

	engine := gin.New()

	// Only the role gates are exercised here, so the session middleware
	// needs no token service behind it.
	session := middleware.NewSessionMiddleware(nil, userService, config.CookieConfig{}, log)

	api := engine.Group("/api", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, who.id)
		c.Set(middleware.ContextUserEmail, who.email)
		c.Set(middleware.ContextUserRole, who.role)
	})

	routes.RegisterSiteRoutes(api, handlers.NewSiteHandler(siteService, assetService, exportService, log), session)
	routes.RegisterAssetRoutes(api, handlers.NewAssetHandler(assetService, log), session)
	routes.RegisterStoreRoutes(api, handlers.NewStoreHandler(storeService, exportService, log), session)
	routes.RegisterAdminRoutes(api, handlers.NewAdminHandler(userService, log), session)

	return &testEnv{engine: engine, db: database, profiles: profileRepo}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func editor() testIdentity {
	return testIdentity{id: "sub-editor", email: "editor@example.com", role: authorization.RoleEditor}
}

func viewer() testIdentity {
	return testIdentity{id: "sub-viewer", email: "viewer@example.com", role: authorization.RoleViewer}
}

func admin() testIdentity {
	return testIdentity{id: "sub-admin", email: "admin@example.com", role: authorization.RoleAdmin}
}

func TestSiteEndpoints(t *testing.T) {
	env := newTestEnv(t, editor())

	createBody := gin.H{
		"name":            "Ajangote",
		"regMFreq":        "R1 / 482 MHz",
		"power":           5000,
		"transmitterType": "LIQUID",
		"towerType":       "GBC",
	}

	t.Run("create", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/sites", createBody)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		data := decodeData(t, rec)
		assert.Equal(t, "Ajangote", data["name"])
		assert.Equal(t, "ACTIVE", data["status"])
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/sites", createBody)
		assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	})

	t.Run("list with query filter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/sites?q=ajan", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Ajangote")

		rec = env.do(t, http.MethodGet, "/api/sites?q=nowhere", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Ajangote")
	})

	t.Run("invalid transmitter filter rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/sites?tt=GAS", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status update writes audit entry", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/sites/1/status", gin.H{"status": "DOWN"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		data := decodeData(t, rec)
		assert.Equal(t, "DOWN", data["status"])

		var count int64
		require.NoError(t, env.db.Model(&models.AuditLogModel{}).
			Where("entity_type = ? AND entity_id = ?", "site", "1").
			Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("status update on unknown site is 404", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/sites/999/status", gin.H{"status": "DOWN"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("meta update clears tower height", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/sites/1/meta",
			gin.H{"towerHeight": 150})
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, float64(150), data["towerHeight"])

		rec = env.do(t, http.MethodPatch, "/api/sites/1/meta",
			gin.H{"setTowerHeight": true})
		require.Equal(t, http.StatusOK, rec.Code)
		data = decodeData(t, rec)
		assert.Nil(t, data["towerHeight"])
	})

	t.Run("mux serial round trip", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/sites/1/mux-serial",
			gin.H{"mux": "MUX2", "serial": "311618187"})
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, "311618187", data["txMux2Serial"])

		rec = env.do(t, http.MethodPatch, "/api/sites/1/mux-serial",
			gin.H{"mux": "MUX4", "serial": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("export is a csv attachment", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/sites/export", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="sites.csv"`)
		assert.Contains(t, rec.Body.String(), "Ajangote")
	})

	t.Run("delete cascades assets", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/assets", gin.H{
			"siteId":     1,
			"categoryId": seedCategory(t, env.db, "Genset"),
			"assetName":  "Genset",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodDelete, "/api/sites/1", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		var assets int64
		require.NoError(t, env.db.Model(&models.AssetModel{}).
			Where("site_id = ?", 1).Count(&assets).Error)
		assert.Zero(t, assets)
	})
}

func seedCategory(t *testing.T, database *gorm.DB, name string) uint {
	t.Helper()
	row := models.CategoryModel{Name: name}
	require.NoError(t, database.Create(&row).Error)
	return row.ID
}

func TestViewerIsReadOnly(t *testing.T) {
	env := newTestEnv(t, viewer())

	mutations := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/api/sites", gin.H{"name": "X"}},
		{http.MethodPatch, "/api/sites/1/status", gin.H{"status": "DOWN"}},
		{http.MethodDelete, "/api/sites/1", nil},
		{http.MethodPost, "/api/assets", gin.H{}},
		{http.MethodPatch, "/api/assets/1", gin.H{}},
		{http.MethodPost, "/api/store", gin.H{}},
		{http.MethodDelete, "/api/store/1", nil},
	}

	for _, m := range mutations {
		rec := env.do(t, m.method, m.path, m.body)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", m.method, m.path)
	}

	rec := env.do(t, http.MethodGet, "/api/sites", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreEndpoints(t *testing.T) {
	env := newTestEnv(t, editor())

	t.Run("create and list", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/store", gin.H{
			"itemNo":      4,
			"description": "UHF Band Pass Filter",
			"quantity":    2,
			"status":      "RECEIVED",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/api/store?q=band+pass", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "UHF Band Pass Filter")
	})

	t.Run("numeric query matches item number", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/store?q=4", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "UHF Band Pass Filter")
	})

	t.Run("status update", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/store/1/status",
			gin.H{"status": "NOT_RECEIVED"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		data := decodeData(t, rec)
		assert.Equal(t, "NOT_RECEIVED", data["status"])
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch, "/api/store/1/status",
			gin.H{"status": "LOST"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/store/1", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodDelete, "/api/store/1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("viewer is rejected", func(t *testing.T) {
		env := newTestEnv(t, viewer())
		rec := env.do(t, http.MethodGet, "/api/admin/users", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("editor is rejected", func(t *testing.T) {
		env := newTestEnv(t, editor())
		rec := env.do(t, http.MethodGet, "/api/admin/users", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin manages roles", func(t *testing.T) {
		who := admin()
		env := newTestEnv(t, who)
		ctx := t.Context()

		require.NoError(t, env.profiles.Create(ctx, &user.Profile{
			ID: who.id, Email: who.email, Role: authorization.RoleAdmin,
		}))
		require.NoError(t, env.profiles.Create(ctx, &user.Profile{
			ID: "sub-other", Email: "other@example.com", Role: authorization.RoleViewer,
		}))

		rec := env.do(t, http.MethodGet, "/api/admin/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "other@example.com")

		rec = env.do(t, http.MethodPatch, "/api/admin/users/sub-other/role",
			gin.H{"role": "EDITOR"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		data := decodeData(t, rec)
		assert.Equal(t, "EDITOR", data["role"])
	})

	t.Run("self demotion is forbidden", func(t *testing.T) {
		who := admin()
		env := newTestEnv(t, who)

		require.NoError(t, env.profiles.Create(t.Context(), &user.Profile{
			ID: who.id, Email: who.email, Role: authorization.RoleAdmin,
		}))

		rec := env.do(t, http.MethodPatch,
			fmt.Sprintf("/api/admin/users/%s/role", who.id),
			gin.H{"role": "VIEWER"})
		assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
	})
}
