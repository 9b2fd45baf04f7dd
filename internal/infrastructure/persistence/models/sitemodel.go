package models

import (
	"time"

	"masttrack/internal/domain/site"
)

// SiteModel is the persistence model for transmission sites.
type SiteModel struct {
	ID              uint    `gorm:"primarykey"`
	Name            string  `gorm:"uniqueIndex;not null;size:120"`
	RegMFreq        string  `gorm:"column:reg_m_freq;size:50"`
	Power           int     `gorm:"not null;index"`
	TransmitterType string  `gorm:"not null;size:10"`
	Status          string  `gorm:"not null;default:ACTIVE;size:10"`
	TowerType       string  `gorm:"not null;default:GBC;size:10"`
	TowerHeight     *int    `gorm:""`
	GPS             *string `gorm:"column:gps;size:255"`
	TxMux1Serial    *string `gorm:"size:100"`
	TxMux2Serial    *string `gorm:"size:100"`
	TxMux3Serial    *string `gorm:"size:100"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (SiteModel) TableName() string {
	return "sites"
}

func (m *SiteModel) ToEntity() *site.Site {
	return &site.Site{
		ID:              m.ID,
		Name:            m.Name,
		RegMFreq:        m.RegMFreq,
		Power:           m.Power,
		TransmitterType: site.TransmitterType(m.TransmitterType),
		Status:          site.Status(m.Status),
		TowerType:       site.TowerType(m.TowerType),
		TowerHeight:     m.TowerHeight,
		GPS:             m.GPS,
		TxMux1Serial:    m.TxMux1Serial,
		TxMux2Serial:    m.TxMux2Serial,
		TxMux3Serial:    m.TxMux3Serial,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func NewSiteModel(s *site.Site) *SiteModel {
	return &SiteModel{
		ID:              s.ID,
		Name:            s.Name,
		RegMFreq:        s.RegMFreq,
		Power:           s.Power,
		TransmitterType: string(s.TransmitterType),
		Status:          string(s.Status),
		TowerType:       string(s.TowerType),
		TowerHeight:     s.TowerHeight,
		GPS:             s.GPS,
		TxMux1Serial:    s.TxMux1Serial,
		TxMux2Serial:    s.TxMux2Serial,
		TxMux3Serial:    s.TxMux3Serial,
	}
}
