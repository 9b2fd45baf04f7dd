// Package asset holds the equipment inventory aggregate: the category and
// subcategory taxonomy plus the per-site asset rows.
package asset

import "time"

// Status is the health state of one equipment unit.
type Status string

const (
	StatusActive         Status = "ACTIVE"
	StatusFaulty         Status = "FAULTY"
	StatusDecommissioned Status = "DECOMMISSIONED"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusFaulty || s == StatusDecommissioned
}

// Category is a top-level equipment class ("Genset", "Transmitter", ...).
// Created by seeding, never deleted by the application.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Subcategory is a named subdivision of exactly one category. Unique by
// (CategoryID, Name).
type Subcategory struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"categoryId"`
	Name       string `json:"name"`
}

// Asset is one physical or logical equipment unit at a site. A nil
// SubcategoryID marks a standalone/system-level device. Within a site the
// tuple (CategoryID, SubcategoryID, AssetName) acts as the natural key the
// seeding procedure upserts against.
type Asset struct {
	ID            uint      `json:"id"`
	SiteID        uint      `json:"siteId"`
	CategoryID    uint      `json:"categoryId"`
	SubcategoryID *uint     `json:"subcategoryId"`
	AssetName     string    `json:"assetName"`
	SerialNumber  *string   `json:"serialNumber"`
	PartNumber    *string   `json:"partNumber"`
	Manufacturer  *string   `json:"manufacturer"`
	Model         *string   `json:"model"`
	Status        Status    `json:"status"`
	Specs         Specs     `json:"specs"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FieldUpdate is the inline-edit payload. A nil pointer leaves the field
// unchanged; the Set flags distinguish "clear" from "untouched" for the
// nullable text columns.
type FieldUpdate struct {
	SerialNumber    *string
	SetSerialNumber bool
	Manufacturer    *string
	SetManufacturer bool
	Model           *string
	SetModel        bool
	PartNumber      *string
	SetPartNumber   bool
	Status          *Status
}
