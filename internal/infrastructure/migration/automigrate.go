package migration

import (
	"masttrack/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SiteModel{},
		&models.CategoryModel{},
		&models.SubcategoryModel{},
		&models.AssetModel{},
		&models.StoreItemModel{},
		&models.UserProfileModel{},
		&models.AuditLogModel{},
	}
}
