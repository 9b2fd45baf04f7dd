package models

import (
	"time"

	"gorm.io/datatypes"

	"masttrack/internal/domain/audit"
)

// AuditLogModel is the persistence model for the append-only change log.
type AuditLogModel struct {
	ID         uint              `gorm:"primarykey"`
	ActorEmail string            `gorm:"not null;size:255;index"`
	Action     string            `gorm:"not null;size:50"`
	EntityType string            `gorm:"not null;size:50;index:idx_audit_entity"`
	EntityID   string            `gorm:"not null;size:64;index:idx_audit_entity"`
	Before     datatypes.JSONMap `gorm:""`
	After      datatypes.JSONMap `gorm:""`
	CreatedAt  time.Time
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}

func (m *AuditLogModel) ToEntity() *audit.Entry {
	return &audit.Entry{
		ID:         m.ID,
		ActorEmail: m.ActorEmail,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Before:     map[string]any(m.Before),
		After:      map[string]any(m.After),
		CreatedAt:  m.CreatedAt,
	}
}

func NewAuditLogModel(e *audit.Entry) *AuditLogModel {
	return &AuditLogModel{
		ActorEmail: e.ActorEmail,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Before:     datatypes.JSONMap(e.Before),
		After:      datatypes.JSONMap(e.After),
	}
}
