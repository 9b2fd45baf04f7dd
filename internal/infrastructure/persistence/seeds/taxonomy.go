package seeds

// Category names. CategoryTransmitter and CategoryEquipmentRack are the two
// with subcategory trees.
const (
	CategoryGenset         = "Genset"
	CategoryAVR            = "AVR"
	CategoryFuelTank       = "Fuel Tank"
	CategoryISOTransformer = "ISO Transformer"
	CategorySolar          = "Solar"
	CategoryTransmitter    = "Transmitter"
	CategoryEquipmentRack  = "Equipment Rack"
)

// DeviceCategories is the full taxonomy in display order.
var DeviceCategories = []string{
	CategoryGenset,
	CategoryAVR,
	CategoryFuelTank,
	CategoryISOTransformer,
	CategorySolar,
	CategoryTransmitter,
	CategoryEquipmentRack,
}

// Transmitter subcategory names.
const (
	SubTransmitterSystem    = "Transmitter System"
	SubExciter              = "Exciter"
	SubExciterSystemControl = "Exciter/System Control"
	SubAmplifier            = "Amplifier"
	SubPump                 = "Pump"
	SubChannelCombiner      = "Channel Combiner"
	SubHeatExchanger        = "Heat Exchanger"
	SubHumidifier           = "Humidifier"
	SubSystemControl        = "System Control"
)

// TransmitterSubcategories holds every transmitter subdivision, including the
// system card.
var TransmitterSubcategories = []string{
	SubTransmitterSystem,
	SubExciter,
	SubExciterSystemControl,
	SubAmplifier,
	SubPump,
	SubChannelCombiner,
	SubHeatExchanger,
	SubHumidifier,
	SubSystemControl,
}

// Equipment rack subcategory names.
const (
	SubHarmonicPVR         = "Harmonic (PVR)"
	SubEnensys             = "Enensys"
	SubModem               = "Modem"
	SubMikrotikRouterboard = "Mikrotik Routerboard"
)

// RackSubcategories holds the rack component subdivisions.
var RackSubcategories = []string{
	SubHarmonicPVR,
	SubEnensys,
	SubModem,
	SubMikrotikRouterboard,
}

// Device type tags written into specs for standalone devices.
const (
	DeviceTypeGenset         = "GENSET"
	DeviceTypeAVR            = "AVR"
	DeviceTypeFuelTank       = "FUEL_TANK"
	DeviceTypeISOTransformer = "ISO_TRANSFORMER"
	DeviceTypeSolar          = "SOLAR"
	DeviceTypeEquipmentRack  = "EQUIPMENT_RACK"
	DeviceTypeTransmitter    = "TRANSMITTER"
)

// Rack component tags written into specs for rack members.
const (
	RackComponentHarmonicPVR = "HARMONIC_PVR"
	RackComponentEnensys     = "ENENSYS"
	RackComponentModem       = "MODEM"
	RackComponentMikrotik    = "MIKROTIK_ROUTERBOARD"
)
