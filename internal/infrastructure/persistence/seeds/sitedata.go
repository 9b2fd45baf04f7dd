// Package seeds holds the deterministic bootstrap data and the idempotent
// procedure that materializes it: the national site list, the equipment
// taxonomy, per-site device structure and the spare-parts ledger.
package seeds

import "masttrack/internal/domain/site"

// SiteDefinition is one row of the authoritative site list. Tower type is
// derived from the name, not stored here.
type SiteDefinition struct {
	Name            string
	RegMFreq        string
	Power           int
	TransmitterType site.TransmitterType
}

// SiteDefinitions is the national transmission network. The seeding procedure
// upserts by name, so re-running after edits refreshes definition fields
// without duplicating rows.
var SiteDefinitions = []SiteDefinition{
	{Name: "Adjangote", RegMFreq: "25/506", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Agona Swedru", RegMFreq: "26/514", Power: 1140, TransmitterType: site.TransmitterAir},
	{Name: "Akatsi", RegMFreq: "26/514", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Akim Oda", RegMFreq: "29/538", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Akosombo", RegMFreq: "29/538", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Amedzofe", RegMFreq: "26/514", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Assin Fosu", RegMFreq: "26/514", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Atebubu", RegMFreq: "22/482", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Axim", RegMFreq: "25/506", Power: 1140, TransmitterType: site.TransmitterAir},
	{Name: "Bawku", RegMFreq: "26/514", Power: 1140, TransmitterType: site.TransmitterAir},
	{Name: "Bimbilla", RegMFreq: "24/498", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Bole", RegMFreq: "24/498", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Bolgatanga", RegMFreq: "26/514", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Damongo", RegMFreq: "24/498", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Dormaa", RegMFreq: "22/482", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Drobo", RegMFreq: "22/482", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Dunkwa", RegMFreq: "26/514", Power: 1140, TransmitterType: site.TransmitterAir},
	{Name: "Essam", RegMFreq: "25/506", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Gambaga", RegMFreq: "24/498", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Hain", RegMFreq: "22/482", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Ho", RegMFreq: "26/514", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Jamasi", RegMFreq: "24/498", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Juabeso", RegMFreq: "25/506", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Kete Krachi", RegMFreq: "26/514", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Kintampo", RegMFreq: "22/482", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Kissi", RegMFreq: "26/514", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Koforidua", RegMFreq: "29/538", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Kumasi", RegMFreq: "24/498", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Mpraeso", RegMFreq: "29/538", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Obuasi", RegMFreq: "24/498", Power: 1140, TransmitterType: site.TransmitterLiquid},
	{Name: "Salaga", RegMFreq: "24/498", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Sefwi Wiawso", RegMFreq: "25/506", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Sekondi", RegMFreq: "25/506", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Sunyani", RegMFreq: "22/482", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Tamale", RegMFreq: "24/498", Power: 5000, TransmitterType: site.TransmitterLiquid},
	{Name: "Tarkwa", RegMFreq: "25/506", Power: 2300, TransmitterType: site.TransmitterLiquid},
	{Name: "Techiman", RegMFreq: "22/482", Power: 1140, TransmitterType: site.TransmitterAir},
	{Name: "Tema", RegMFreq: "25/506", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Tumu", RegMFreq: "22/482", Power: 1140, TransmitterType: site.TransmitterAir},
	{Name: "Wa", RegMFreq: "22/482", Power: 2300, TransmitterType: site.TransmitterAir},
	{Name: "Weija", RegMFreq: "25/506", Power: 600, TransmitterType: site.TransmitterAir},
	{Name: "Yendi", RegMFreq: "24/498", Power: 5000, TransmitterType: site.TransmitterLiquid},
}

// enensysSites lists the sites whose equipment rack carries an Enensys unit.
var enensysSites = map[string]bool{
	"Adjangote":    true,
	"Agona Swedru": true,
	"Akatsi":       true,
	"Amedzofe":     true,
	"Assin Fosu":   true,
	"Ho":           true,
	"Jamasi":       true,
	"Kete Krachi":  true,
	"Kissi":        true,
}

// knetTowerSites lists the sites mounted on K-NET infrastructure; every
// other site is on a GBC tower.
var knetTowerSites = map[string]bool{
	"Agona Swedru": true,
	"Akim Oda":     true,
	"Akosombo":     true,
	"Atebubu":      true,
	"Axim":         true,
	"Bawku":        true,
	"Bole":         true,
	"Dormaa":       true,
	"Dunkwa":       true,
	"Essam":        true,
	"Juabeso":      true,
	"Mpraeso":      true,
	"Tarkwa":       true,
	"Techiman":     true,
	"Tumu":         true,
}

// TowerTypeFor derives the tower owner from the site name.
func TowerTypeFor(siteName string) site.TowerType {
	if knetTowerSites[siteName] {
		return site.TowerKNET
	}
	return site.TowerGBC
}

// HasEnensys reports whether the site's rack includes an Enensys unit.
func HasEnensys(siteName string) bool {
	return enensysSites[siteName]
}

// AmpCounts is the amplifier complement per mux chain for a power class.
type AmpCounts struct {
	Mux12 int
	Mux3  int
}

// AmpCountsFor maps transmitter power to amplifier counts. Unknown power
// classes get no amplifiers rather than failing the seed.
func AmpCountsFor(power int) AmpCounts {
	switch power {
	case 5000:
		return AmpCounts{Mux12: 10, Mux3: 4}
	case 2300:
		return AmpCounts{Mux12: 4, Mux3: 2}
	case 1140:
		return AmpCounts{Mux12: 4, Mux3: 1}
	case 600:
		return AmpCounts{Mux12: 2, Mux3: 1}
	default:
		return AmpCounts{}
	}
}

// harmonicSerials carries the recorded serial numbers for the handful of
// Harmonic (PVR) units whose identity is known.
var harmonicSerials = map[string]string{
	"Akatsi":   "311615135",
	"Akosombo": "56481818",
	"Axim":     "56472805",
	"Bawku":    "311618193",
}

var harmonicPartNumbers = map[string]string{
	"Akatsi": "099-0580-251",
}
