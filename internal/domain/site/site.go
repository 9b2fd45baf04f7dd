// Package site holds the transmission-site aggregate.
package site

import "time"

// TransmitterType is the cooling architecture of the site's transmitter.
type TransmitterType string

const (
	TransmitterAir    TransmitterType = "AIR"
	TransmitterLiquid TransmitterType = "LIQUID"
)

func (t TransmitterType) IsValid() bool {
	return t == TransmitterAir || t == TransmitterLiquid
}

// Status is the operational state of the site.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusDown   Status = "DOWN"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusDown
}

// TowerType says whose infrastructure the antenna is mounted on.
type TowerType string

const (
	TowerGBC  TowerType = "GBC"
	TowerKNET TowerType = "KNET"
)

func (t TowerType) IsValid() bool {
	return t == TowerGBC || t == TowerKNET
}

// MuxKey identifies one of the per-site transmitter serial slots.
type MuxKey string

const (
	Mux1 MuxKey = "MUX1"
	Mux2 MuxKey = "MUX2"
	Mux3 MuxKey = "MUX3"
)

func (m MuxKey) IsValid() bool {
	return m == Mux1 || m == Mux2 || m == Mux3
}

// Site is a broadcast transmission location. Name is its immutable identity.
type Site struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	RegMFreq        string          `json:"regMFreq"`
	Power           int             `json:"power"`
	TransmitterType TransmitterType `json:"transmitterType"`
	Status          Status          `json:"status"`
	TowerType       TowerType       `json:"towerType"`
	TowerHeight     *int            `json:"towerHeight"`
	GPS             *string         `json:"gps"`
	TxMux1Serial    *string         `json:"txMux1Serial"`
	TxMux2Serial    *string         `json:"txMux2Serial"`
	TxMux3Serial    *string         `json:"txMux3Serial"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// MetaUpdate carries the inline-editable tower metadata. Nil pointer means
// "leave unchanged"; TowerHeight and GPS additionally support explicit
// clearing via the Set flags because null is a meaningful value for them.
type MetaUpdate struct {
	TowerType      *TowerType
	TowerHeight    *int
	SetTowerHeight bool
	GPS            *string
	SetGPS         bool
}
