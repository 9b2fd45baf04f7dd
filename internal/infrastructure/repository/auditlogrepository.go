package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"masttrack/internal/domain/audit"
	"masttrack/internal/infrastructure/persistence/models"
	"masttrack/internal/shared/db"
	"masttrack/internal/shared/logger"
)

// AuditLogRepository implements the audit log persistence port on gorm.
type AuditLogRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAuditLogRepository(database *gorm.DB, log logger.Interface) audit.Repository {
	return &AuditLogRepository{db: database, logger: log}
}

func (r *AuditLogRepository) conn(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db)
}

func (r *AuditLogRepository) Append(ctx context.Context, e *audit.Entry) error {
	model := models.NewAuditLogModel(e)
	if err := r.conn(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit entry",
			"entity_type", e.EntityType, "entity_id", e.EntityID, "error", err)
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	e.ID = model.ID
	return nil
}

func (r *AuditLogRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*audit.Entry, error) {
	var entryModels []*models.AuditLogModel
	if err := r.conn(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").Find(&entryModels).Error; err != nil {
		r.logger.Errorw("failed to list audit entries",
			"entity_type", entityType, "entity_id", entityID, "error", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(entryModels))
	for _, model := range entryModels {
		entries = append(entries, model.ToEntity())
	}
	return entries, nil
}
