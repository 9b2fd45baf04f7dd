package models

import (
	"time"

	"masttrack/internal/domain/store"
)

// StoreItemModel is the persistence model for spare-parts ledger lines.
type StoreItemModel struct {
	ID          uint   `gorm:"primarykey"`
	ItemNo      int    `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text;not null"`
	Quantity    int    `gorm:"not null;default:0"`
	Status      string `gorm:"not null;default:RECEIVED;size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (StoreItemModel) TableName() string {
	return "store_items"
}

func (m *StoreItemModel) ToEntity() *store.Item {
	return &store.Item{
		ID:          m.ID,
		ItemNo:      m.ItemNo,
		Description: m.Description,
		Quantity:    m.Quantity,
		Status:      store.Status(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewStoreItemModel(item *store.Item) *StoreItemModel {
	return &StoreItemModel{
		ID:          item.ID,
		ItemNo:      item.ItemNo,
		Description: item.Description,
		Quantity:    item.Quantity,
		Status:      string(item.Status),
	}
}
