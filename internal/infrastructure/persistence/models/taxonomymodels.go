package models

import (
	"time"

	"masttrack/internal/domain/asset"
)

// CategoryModel is the persistence model for top-level equipment classes.
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) ToEntity() *asset.Category {
	return &asset.Category{ID: m.ID, Name: m.Name}
}

// SubcategoryModel is the persistence model for category subdivisions,
// unique by (category_id, name).
type SubcategoryModel struct {
	ID         uint          `gorm:"primarykey"`
	CategoryID uint          `gorm:"not null;uniqueIndex:idx_subcategory_category_name"`
	Name       string        `gorm:"not null;size:100;uniqueIndex:idx_subcategory_category_name"`
	Category   CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (SubcategoryModel) TableName() string {
	return "subcategories"
}

func (m *SubcategoryModel) ToEntity() *asset.Subcategory {
	return &asset.Subcategory{ID: m.ID, CategoryID: m.CategoryID, Name: m.Name}
}
