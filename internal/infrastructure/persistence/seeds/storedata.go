package seeds

import "masttrack/internal/domain/store"

// StoreItems is the opening spare-parts ledger. Seeding upserts by item
// number, refreshing description, quantity and status on existing lines.
var StoreItems = []store.Item{
	{
		ItemNo: 1,
		Description: `001 - THU9 5kW PUMP
NEW pump unit NMT MAX II
Initial pump NMT MAX C 40/120-F250 - 2500.6058.00 was discontinued from the supplier.
Successor is the pump NMT MAX II 40/120-F250 - 2500.6958.00.
When replacing to the MAX II it is recommended to
exchange both pumps in the pump unit.
See therefore the SC 17537
PUMP NMT MAX II C 40/120-F250 - 2500.6958.00 QTY=10
SEALING 49X85X2 FOR PUMP - 2102.3917.00 QTY=20
Warranty: 12 months`,
		Quantity: 10,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 2,
		Description: `THU9 2.3kW PUMP
PUMP NMT SMART C40/100F - 2500.6041.00
SEALING 49X85X2 FOR PUMP - 2102.3917.00
Warranty: 12 months`,
		Quantity: 5,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 3,
		Description: `3KW Power Supply PMU901
PN: 2600.1334.00 - PMU901 power supply without heatsink
Warranty: 12 months`,
		Quantity: 10,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 4,
		Description: `BLF888A UHF Power Transistor Bent
PN: 2501.7529.00`,
		Quantity: 10,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 5,
		Description: `BLF888B UHF Power Transistor Bent
PN: 2109.1049.00`,
		Quantity: 10,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 6,
		Description: `Power sensor/GD900Z3 TEST SYSTEM
PN: 2108.4809.40
Warranty: 12 months`,
		Quantity: 5,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 7,
		Description: `TCE900-M3 RF Board
PN: 2109.2597.02
Warranty: 12 months`,
		Quantity: 5,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 8,
		Description: `TCE900-M2 Coder Board
PN: 2109.2397.03
Warranty: 12 months`,
		Quantity: 20,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 9,
		Description: `Fuse 20A FF
PN: 3584.7211.00`,
		Quantity: 20,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 10,
		Description: `Fuse 40A FF
PN: 2109.1084.00`,
		Quantity: 20,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 11,
		Description: `PHU902 Amplifier
UHF amplifier band IV/V, liquid cooled COFDM: 1.15 kW rms,
Doherty B6 3-phase
Warranty: 12 months`,
		Quantity: 6,
		Status:   store.StatusNotReceived,
	},
	{
		ItemNo: 12,
		Description: `PMU901 amplifier
UHF amplifier band IV/V for TMU9
UHF amplifier band IV/V, air cooled DTV: 300 W rms single phase`,
		Quantity: 3,
		Status:   store.StatusNotReceived,
	},
	{
		ItemNo: 13,
		Description: `GPS Antenna
PN: 2080.5459.00
Warranty: 12 months`,
		Quantity: 10,
		Status:   store.StatusNotReceived,
	},
	{
		ItemNo: 14,
		Description: `GPS Surge Protector gas Capsule
PN: 2104.2282.00 - GAS CAPSULES FOR LIGHTNING PROTEC
Warranty: 12 months`,
		Quantity: 20,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 15,
		Description: `Exciter Switch9 3XRF
PN: 2500.0450.02
Warranty: 12 months`,
		Quantity: 5,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 16,
		Description: `TDU Display Unit
PN: 2109.4754.00
Warranty: 12 months`,
		Quantity: 4,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 17,
		Description: `MSATA Cards
Preprogrammed with image v24.0.0`,
		Quantity: 100,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 18,
		Description: `LNB SAT 3/VSAT
Model: NJR2836H with F-Type connector`,
		Quantity: 26,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 19,
		Description: `ETL L Band Splitter
Single 16-way Dextra L-band Splitter, 1U 19 shelf.
Dual redundant amplifiers and power supplies.
Remote control via RJ45 Ethernet with SNMP.
Warranty: 12 months`,
		Quantity: 15,
		Status:   store.StatusNotReceived,
	},
	{
		ItemNo:      20,
		Description: `PHU902 Power Supply 2109.1003.00`,
		Quantity:    9,
		Status:      store.StatusReceived,
	},
	{
		ItemNo: 21,
		Description: `Mains Distribution Board (MDB) 5KW TX
2109.4202.02`,
		Quantity: 2,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 22,
		Description: `Mains Distribution Board (MDB) 2.3KW TX
2109.4202.02`,
		Quantity: 2,
		Status:   store.StatusReceived,
	},
	{
		ItemNo:      23,
		Description: `TCE900 Power Supply 3586.5180.00`,
		Quantity:    10,
		Status:      store.StatusReceived,
	},
	{
		ItemNo:      24,
		Description: `System Connection Board 2109.2300.02`,
		Quantity:    3,
		Status:      store.StatusReceived,
	},
	{
		ItemNo:      25,
		Description: `TCE900 - M4 CIF (Cooling Interface) 2109.2697.02`,
		Quantity:    2,
		Status:      store.StatusReceived,
	},
	{
		ItemNo:      26,
		Description: `IPS Board 1206.3300.00`,
		Quantity:    5,
		Status:      store.StatusReceived,
	},
	{
		ItemNo: 27,
		Description: `Axial fan D500 for TH9-C2
3588.7900.00`,
		Quantity: 2,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 28,
		Description: `FAN 250MM RADIAL
3588.7900.00`,
		Quantity: 5,
		Status:   store.StatusReceived,
	},
	{
		ItemNo: 29,
		Description: `FAN 127X127X38
2104.9129.00`,
		Quantity: 10,
		Status:   store.StatusReceived,
	},
	{
		ItemNo:      30,
		Description: `Absorber Load 2109.8850.00`,
		Quantity:    5,
		Status:      store.StatusReceived,
	},
}
