package models

import (
	"time"

	"gorm.io/datatypes"

	"masttrack/internal/domain/asset"
)

// AssetModel is the persistence model for equipment units. Specs is the
// weakly-typed JSON overflow bag.
type AssetModel struct {
	ID            uint              `gorm:"primarykey"`
	SiteID        uint              `gorm:"not null;index"`
	CategoryID    uint              `gorm:"not null;index"`
	SubcategoryID *uint             `gorm:"index"`
	AssetName     string            `gorm:"not null;size:120"`
	SerialNumber  *string           `gorm:"size:100"`
	PartNumber    *string           `gorm:"size:100"`
	Manufacturer  *string           `gorm:"size:100"`
	Model         *string           `gorm:"size:100"`
	Status        string            `gorm:"not null;default:ACTIVE;size:20"`
	Specs         datatypes.JSONMap `gorm:""`
	Site          SiteModel         `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
	Category      CategoryModel     `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Subcategory   *SubcategoryModel `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (AssetModel) TableName() string {
	return "assets"
}

func (m *AssetModel) ToEntity() *asset.Asset {
	var specs asset.Specs
	if m.Specs != nil {
		specs = asset.Specs(m.Specs)
	}
	return &asset.Asset{
		ID:            m.ID,
		SiteID:        m.SiteID,
		CategoryID:    m.CategoryID,
		SubcategoryID: m.SubcategoryID,
		AssetName:     m.AssetName,
		SerialNumber:  m.SerialNumber,
		PartNumber:    m.PartNumber,
		Manufacturer:  m.Manufacturer,
		Model:         m.Model,
		Status:        asset.Status(m.Status),
		Specs:         specs,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func NewAssetModel(a *asset.Asset) *AssetModel {
	var specs datatypes.JSONMap
	if a.Specs != nil {
		specs = datatypes.JSONMap(a.Specs)
	}
	return &AssetModel{
		ID:            a.ID,
		SiteID:        a.SiteID,
		CategoryID:    a.CategoryID,
		SubcategoryID: a.SubcategoryID,
		AssetName:     a.AssetName,
		SerialNumber:  a.SerialNumber,
		PartNumber:    a.PartNumber,
		Manufacturer:  a.Manufacturer,
		Model:         a.Model,
		Status:        string(a.Status),
		Specs:         specs,
	}
}
