package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"masttrack/internal/domain/store"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// StoreItemRepository implements the store ledger persistence port on gorm.
type StoreItemRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStoreItemRepository(database *gorm.DB, log logger.Interface) store.Repository {
	return &StoreItemRepository{db: database, logger: log}
}

func (r *StoreItemRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *StoreItemRepository) Create(ctx context.Context, item *store.Item) error {
	model := models.NewStoreItemModel(item)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create store item", "item_no", item.ItemNo, "error", err)
		return fmt.Errorf("failed to create store item: %w", err)
	}
	item.ID = model.ID
	return nil
}

func (r *StoreItemRepository) GetByID(ctx context.Context, id uint) (*store.Item, error) {
	var model models.StoreItemModel
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get store item by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get store item: %w", err)
	}
	return model.ToEntity(), nil
}

// List matches description by substring and, when the query parses as an
// integer, item_no exactly. The status filter ANDs with the text dimension.
func (r *StoreItemRepository) List(ctx context.Context, filter store.ListFilter) ([]*store.Item, error) {
	query := r.conn(ctx).Model(&models.StoreItemModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		textMatch := r.db.Where("LOWER(description) LIKE ?", pattern)
		if n, err := strconv.Atoi(q); err == nil {
			textMatch = textMatch.Or("item_no = ?", n)
		}
		query = query.Where(textMatch)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var itemModels []*models.StoreItemModel
	if err := query.Order("item_no ASC").Find(&itemModels).Error; err != nil {
		r.logger.Errorw("failed to list store items", "error", err)
		return nil, fmt.Errorf("failed to list store items: %w", err)
	}

	items := make([]*store.Item, 0, len(itemModels))
	for _, model := range itemModels {
		items = append(items, model.ToEntity())
	}
	return items, nil
}

func (r *StoreItemRepository) UpdateStatus(ctx context.Context, id uint, status store.Status) (*store.Item, error) {
	result := r.conn(ctx).Model(&models.StoreItemModel{}).Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		r.logger.Errorw("failed to update store item status", "id", id, "error", result.Error)
		return nil, fmt.Errorf("failed to update store item status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// UpsertByItemNo creates the line or refreshes description, quantity and
// status on the existing row with the same item number.
func (r *StoreItemRepository) UpsertByItemNo(ctx context.Context, item *store.Item) error {
	var existing models.StoreItemModel
	err := r.conn(ctx).Where("item_no = ?", item.ItemNo).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.Create(ctx, item)
	}
	if err != nil {
		r.logger.Errorw("failed to look up store item", "item_no", item.ItemNo, "error", err)
		return fmt.Errorf("failed to look up store item: %w", err)
	}

	updates := map[string]interface{}{
		"description": item.Description,
		"quantity":    item.Quantity,
		"status":      string(item.Status),
	}
	if err := r.conn(ctx).Model(&models.StoreItemModel{}).
		Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		r.logger.Errorw("failed to upsert store item", "item_no", item.ItemNo, "error", err)
		return fmt.Errorf("failed to upsert store item: %w", err)
	}
	item.ID = existing.ID
	return nil
}

func (r *StoreItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.conn(ctx).Delete(&models.StoreItemModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete store item", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete store item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
