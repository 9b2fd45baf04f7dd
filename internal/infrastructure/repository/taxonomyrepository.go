package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"masttrack/internal/domain/asset"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// CategoryRepository implements the category persistence port on gorm.
type CategoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCategoryRepository(database *gorm.DB, log logger.Interface) asset.CategoryRepository {
	return &CategoryRepository{db: database, logger: log}
}

func (r *CategoryRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

// UpsertByName returns the existing category of that name or creates it.
// Names never change once created, so there is nothing to update.
func (r *CategoryRepository) UpsertByName(ctx context.Context, name string) (*asset.Category, error) {
	var model models.CategoryModel
	err := r.conn(ctx).Where("name = ?", name).First(&model).Error
	if err == nil {
		return model.ToEntity(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Errorw("failed to look up category", "name", name, "error", err)
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	model = models.CategoryModel{Name: name}
	if err := r.conn(ctx).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to create category", "name", name, "error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*asset.Category, error) {
	var model models.CategoryModel
	if err := r.conn(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get category by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*asset.Category, error) {
	var categoryModels []*models.CategoryModel
	if err := r.conn(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		r.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*asset.Category, 0, len(categoryModels))
	for _, model := range categoryModels {
		categories = append(categories, model.ToEntity())
	}
	return categories, nil
}

// SubcategoryRepository implements the subcategory persistence port on gorm.
type SubcategoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubcategoryRepository(database *gorm.DB, log logger.Interface) asset.SubcategoryRepository {
	return &SubcategoryRepository{db: database, logger: log}
}

func (r *SubcategoryRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *SubcategoryRepository) UpsertByName(ctx context.Context, categoryID uint, name string) (*asset.Subcategory, error) {
	var model models.SubcategoryModel
	err := r.conn(ctx).Where("category_id = ? AND name = ?", categoryID, name).
		First(&model).Error
	if err == nil {
		return model.ToEntity(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Errorw("failed to look up subcategory",
			"category_id", categoryID, "name", name, "error", err)
		return nil, fmt.Errorf("failed to look up subcategory: %w", err)
	}

	model = models.SubcategoryModel{CategoryID: categoryID, Name: name}
	if err := r.conn(ctx).Create(&model).Error; err != nil {
		r.logger.Errorw("failed to create subcategory",
			"category_id", categoryID, "name", name, "error", err)
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	return model.ToEntity(), nil
}

func (r *SubcategoryRepository) ListByCategoryID(ctx context.Context, categoryID uint) ([]*asset.Subcategory, error) {
	var subcategoryModels []*models.SubcategoryModel
	if err := r.conn(ctx).Where("category_id = ?", categoryID).
		Order("name ASC").Find(&subcategoryModels).Error; err != nil {
		r.logger.Errorw("failed to list subcategories", "category_id", categoryID, "error", err)
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	subcategories := make([]*asset.Subcategory, 0, len(subcategoryModels))
	for _, model := range subcategoryModels {
		subcategories = append(subcategories, model.ToEntity())
	}
	return subcategories, nil
}
