package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"masttrack/internal/domain/asset"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// AssetRepository implements the asset repository interface on gorm.
type AssetRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAssetRepository(database *gorm.DB, log logger.Interface) asset.Repository {
	return &AssetRepository{db: database, logger: log}
}

func (r *AssetRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	model := models.NewAssetModel(a)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create asset",
			"site_id", a.SiteID, "name", a.AssetName, "error", err)
		return fmt.Errorf("failed to create asset: %w", err)
	}
	a.ID = model.ID
	return nil
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint) (*asset.Asset, error) {
	var model models.AssetModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get asset by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *AssetRepository) FindByNaturalKey(ctx context.Context, key asset.NaturalKey) (*asset.Asset, error) {
	query := r.conn(ctx).
		Where("site_id = ? AND category_id = ? AND asset_name = ?",
			key.SiteID, key.CategoryID, key.AssetName)
	if key.SubcategoryID == nil {
		query = query.Where("subcategory_id IS NULL")
	} else {
		query = query.Where("subcategory_id = ?", *key.SubcategoryID)
	}

	var model models.AssetModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find asset by natural key",
			"site_id", key.SiteID, "name", key.AssetName, "error", err)
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *AssetRepository) List(ctx context.Context, filter asset.ListFilter) ([]*asset.Asset, error) {
	query := r.conn(ctx).Model(&models.AssetModel{})

	if filter.SiteID != 0 {
		query = query.Where("site_id = ?", filter.SiteID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			r.db.Where("LOWER(asset_name) LIKE ?", pattern).
				Or("LOWER(serial_number) LIKE ?", pattern).
				Or("LOWER(manufacturer) LIKE ?", pattern).
				Or("LOWER(model) LIKE ?", pattern),
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var assetModels []*models.AssetModel
	if err := query.Order("asset_name ASC").Find(&assetModels).Error; err != nil {
		r.logger.Errorw("failed to list assets", "site_id", filter.SiteID, "error", err)
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*asset.Asset, 0, len(assetModels))
	for _, model := range assetModels {
		assets = append(assets, model.ToEntity())
	}
	return assets, nil
}

// Update rewrites the mutable columns of an existing row. Column-level
// updates keep created_at untouched regardless of what the entity carries.
func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := models.NewAssetModel(a)
	updates := map[string]interface{}{
		"site_id":        model.SiteID,
		"category_id":    model.CategoryID,
		"subcategory_id": model.SubcategoryID,
		"asset_name":     model.AssetName,
		"serial_number":  model.SerialNumber,
		"part_number":    model.PartNumber,
		"manufacturer":   model.Manufacturer,
		"model":          model.Model,
		"status":         model.Status,
		"specs":          model.Specs,
	}
	result := r.conn(ctx).Model(&models.AssetModel{}).Where("id = ?", a.ID).Updates(updates)
	if result.Error != nil {
		r.logger.Errorw("failed to update asset", "id", a.ID, "error", result.Error)
		return fmt.Errorf("failed to update asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AssetRepository) UpdateFields(ctx context.Context, id uint, update asset.FieldUpdate) (*asset.Asset, error) {
	updates := map[string]interface{}{}
	if update.SetSerialNumber {
		updates["serial_number"] = update.SerialNumber
	}
	if update.SetManufacturer {
		updates["manufacturer"] = update.Manufacturer
	}
	if update.SetModel {
		updates["model"] = update.Model
	}
	if update.SetPartNumber {
		updates["part_number"] = update.PartNumber
	}
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}

	if len(updates) > 0 {
		result := r.conn(ctx).Model(&models.AssetModel{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			r.logger.Errorw("failed to update asset fields", "id", id, "error", result.Error)
			return nil, fmt.Errorf("failed to update asset fields: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	return r.GetByID(ctx, id)
}

func (r *AssetRepository) DeleteTransmitterComponents(ctx context.Context, siteID, categoryID uint, keepSubcategoryID uint) error {
	result := r.conn(ctx).
		Where("site_id = ? AND category_id = ?", siteID, categoryID).
		Where("subcategory_id IS NULL OR subcategory_id <> ?", keepSubcategoryID).
		Delete(&models.AssetModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete transmitter components",
			"site_id", siteID, "error", result.Error)
		return fmt.Errorf("failed to delete transmitter components: %w", result.Error)
	}
	return nil
}

func (r *AssetRepository) DeleteBySiteID(ctx context.Context, siteID uint) error {
	if err := r.conn(ctx).Where("site_id = ?", siteID).
		Delete(&models.AssetModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete site assets", "site_id", siteID, "error", err)
		return fmt.Errorf("failed to delete site assets: %w", err)
	}
	return nil
}

func (r *AssetRepository) CountBySiteID(ctx context.Context, siteID uint) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.AssetModel{}).
		Where("site_id = ?", siteID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count site assets: %w", err)
	}
	return count, nil
}
