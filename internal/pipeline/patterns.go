package pipeline

// ClassificationPattern scores one candidate type. Several patterns may name
// the same type at different specificity; each is scored on its own.
type ClassificationPattern struct {
	AssetType            string
	ManufacturerKeywords []string
	ModelKeywords        []string
	FreeTextKeywords     []string
	SizeUnitKeywords     []string
	BaseConfidence       float64
}

var equipmentPatterns = []ClassificationPattern{
	// Air Handlers
	{
		AssetType:            "AHU (with Chilled Water)",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"ahu", "air handler", "handling unit"},
		FreeTextKeywords:     []string{"air handler", "ahu", "handling unit", "air handling", "chilled water"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Air Handler",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"ahu", "air handler", "handling unit"},
		FreeTextKeywords:     []string{"air handler", "ahu", "handling unit", "air handling"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute"},
		BaseConfidence:       0.8,
	},

	// RTUs (Roof Top Units)
	{
		AssetType:            "Packaged AC (Cooling Only)",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "lennox", "rheem"},
		ModelKeywords:        []string{"rtu", "roof", "packaged", "rooftop", "ac"},
		FreeTextKeywords:     []string{"roof top unit", "rtu", "rooftop", "packaged unit", "roof mounted", "cooling only"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "RTU",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "lennox", "rheem"},
		ModelKeywords:        []string{"rtu", "roof", "packaged", "rooftop"},
		FreeTextKeywords:     []string{"roof top unit", "rtu", "rooftop", "packaged unit", "roof mounted"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh"},
		BaseConfidence:       0.8,
	},

	// Packaged Units
	{
		AssetType:            "Packaged Unit",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "lennox", "rheem"},
		ModelKeywords:        []string{"packaged", "package", "unit"},
		FreeTextKeywords:     []string{"packaged unit", "package unit", "unitary"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh"},
		BaseConfidence:       0.85,
	},

	// Boilers
	{
		AssetType:            "Boiler- Hot Water (Gas)",
		ManufacturerKeywords: []string{"cleaver brooks", "burnham", "weil mclain", "bryan", "laars"},
		ModelKeywords:        []string{"boiler", "steam", "hot water", "gas"},
		FreeTextKeywords:     []string{"boiler", "steam", "hot water", "hydronic", "gas fired"},
		SizeUnitKeywords:     []string{"btu", "btuh", "mbh", "hp", "horsepower"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Boiler- Hot Water (Electric)",
		ManufacturerKeywords: []string{"cleaver brooks", "burnham", "weil mclain", "bryan", "laars"},
		ModelKeywords:        []string{"boiler", "electric", "hot water"},
		FreeTextKeywords:     []string{"boiler", "electric", "hot water", "hydronic", "electric fired"},
		SizeUnitKeywords:     []string{"btu", "btuh", "mbh", "hp", "horsepower", "kw"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Boiler",
		ManufacturerKeywords: []string{"cleaver brooks", "burnham", "weil mclain", "bryan", "laars"},
		ModelKeywords:        []string{"boiler", "steam", "hot water"},
		FreeTextKeywords:     []string{"boiler", "steam", "hot water", "hydronic"},
		SizeUnitKeywords:     []string{"btu", "btuh", "mbh", "hp", "horsepower"},
		BaseConfidence:       0.8,
	},

	// Chillers
	{
		AssetType:            "Chiller- WC (Centrifugal)",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"chiller", "chill", "cooling", "centrifugal"},
		FreeTextKeywords:     []string{"chiller", "chilled water", "centrifugal", "water cooled"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh", "kw"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Chiller- AC Packaged",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"chiller", "chill", "cooling", "packaged"},
		FreeTextKeywords:     []string{"chiller", "chilled water", "packaged", "air cooled"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh", "kw"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Chiller",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"chiller", "chill", "cooling"},
		FreeTextKeywords:     []string{"chiller", "chilled water", "centrifugal", "screw"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh", "kw"},
		BaseConfidence:       0.8,
	},

	// Heat Pumps
	{
		AssetType:            "Packaged Heat Pump-AC (All)",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"heat pump", "hspf", "seer", "packaged"},
		FreeTextKeywords:     []string{"heat pump", "hspf", "seer", "heating and cooling", "packaged"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Heat Pump",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi", "lennox"},
		ModelKeywords:        []string{"heat pump", "hspf", "seer"},
		FreeTextKeywords:     []string{"heat pump", "hspf", "seer", "heating and cooling"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh"},
		BaseConfidence:       0.8,
	},

	// Fan Coils
	{
		AssetType:            "Fan-Coil",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi"},
		ModelKeywords:        []string{"fan coil", "fc", "coil"},
		FreeTextKeywords:     []string{"fan coil", "fan-coil", "fc", "coil unit"},
		SizeUnitKeywords:     []string{"cfm", "btu", "btuh"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Fan Coil",
		ManufacturerKeywords: []string{"carrier", "trane", "york", "daikin", "mitsubishi"},
		ModelKeywords:        []string{"fan coil", "fc", "coil"},
		FreeTextKeywords:     []string{"fan coil", "fan-coil", "fc", "coil unit"},
		SizeUnitKeywords:     []string{"cfm", "btu", "btuh"},
		BaseConfidence:       0.8,
	},

	// VAV Boxes
	{
		AssetType:            "VAV",
		ManufacturerKeywords: []string{"price", "titus", "barcol air", "krueger", "nailor"},
		ModelKeywords:        []string{"vav", "variable air volume"},
		FreeTextKeywords:     []string{"vav", "variable air volume", "volume box"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "VAV- Fan Powered",
		ManufacturerKeywords: []string{"price", "titus", "barcol air", "krueger", "nailor"},
		ModelKeywords:        []string{"vav", "variable air volume", "fan powered"},
		FreeTextKeywords:     []string{"vav", "variable air volume", "volume box", "fan powered"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute"},
		BaseConfidence:       0.9,
	},

	// Pumps
	{
		AssetType:            "Pump",
		ManufacturerKeywords: []string{"grundfos", "armstrong", "bell & gossett", "taco", "wilson"},
		ModelKeywords:        []string{"pump", "circulator", "centrifugal"},
		FreeTextKeywords:     []string{"pump", "circulator", "centrifugal", "water pump"},
		SizeUnitKeywords:     []string{"gpm", "gallons per minute", "hp", "horsepower"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Pump (Sewage and Sump)",
		ManufacturerKeywords: []string{"grundfos", "armstrong", "bell & gossett", "taco", "wilson"},
		ModelKeywords:        []string{"pump", "sewage", "sump"},
		FreeTextKeywords:     []string{"pump", "sewage", "sump", "wastewater"},
		SizeUnitKeywords:     []string{"gpm", "gallons per minute", "hp", "horsepower"},
		BaseConfidence:       0.9,
	},

	// Cooling Towers
	{
		AssetType:            "Cooling Tower",
		ManufacturerKeywords: []string{"baltimore aircoil", "evapco", "bac", "marley"},
		ModelKeywords:        []string{"cooling tower", "tower", "evaporative"},
		FreeTextKeywords:     []string{"cooling tower", "evaporative", "tower", "condenser"},
		SizeUnitKeywords:     []string{"ton", "btu", "btuh", "gpm"},
		BaseConfidence:       0.9,
	},

	// Unit Heaters
	{
		AssetType:            "Unit Heater (Gas)",
		ManufacturerKeywords: []string{"reznor", "modine", "berkeley", "sterling", "york"},
		ModelKeywords:        []string{"unit heater", "heater", "gas heater"},
		FreeTextKeywords:     []string{"unit heater", "gas heater", "reznor", "modine", "gas fired"},
		SizeUnitKeywords:     []string{"btu", "btuh", "mbh"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Unit Heater (Electric)",
		ManufacturerKeywords: []string{"reznor", "modine", "berkeley", "sterling", "york"},
		ModelKeywords:        []string{"unit heater", "heater", "electric heater"},
		FreeTextKeywords:     []string{"unit heater", "electric heater", "electric fired"},
		SizeUnitKeywords:     []string{"btu", "btuh", "mbh", "kw"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Unit Heater",
		ManufacturerKeywords: []string{"reznor", "modine", "berkeley", "sterling", "york"},
		ModelKeywords:        []string{"unit heater", "heater", "gas heater"},
		FreeTextKeywords:     []string{"unit heater", "gas heater", "reznor", "modine"},
		SizeUnitKeywords:     []string{"btu", "btuh", "mbh"},
		BaseConfidence:       0.8,
	},

	// Fans
	{
		AssetType:            "Fan- Major (Larger Stand Alone)",
		ManufacturerKeywords: []string{"greenheck", "loren cook", "twin city fan", "howden"},
		ModelKeywords:        []string{"fan", "blower", "exhaust", "major"},
		FreeTextKeywords:     []string{"fan", "blower", "exhaust fan", "supply fan", "major fan"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute", "rpm"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Fan- Minor (Other)",
		ManufacturerKeywords: []string{"greenheck", "loren cook", "twin city fan", "howden"},
		ModelKeywords:        []string{"fan", "blower", "exhaust", "minor"},
		FreeTextKeywords:     []string{"fan", "blower", "exhaust fan", "supply fan", "minor fan"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute", "rpm"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Fan",
		ManufacturerKeywords: []string{"greenheck", "loren cook", "twin city fan", "howden"},
		ModelKeywords:        []string{"fan", "blower", "exhaust"},
		FreeTextKeywords:     []string{"fan", "blower", "exhaust fan", "supply fan"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute", "rpm"},
		BaseConfidence:       0.75,
	},

	// VFDs
	{
		AssetType:            "Variable Frequency-Speed Drive (VFD)",
		ManufacturerKeywords: []string{"abb", "schneider", "siemens", "danfoss", "yaskawa"},
		ModelKeywords:        []string{"vfd", "variable frequency", "inverter", "drive"},
		FreeTextKeywords:     []string{"vfd", "variable frequency drive", "inverter", "drive"},
		SizeUnitKeywords:     []string{"hp", "horsepower", "kw", "kilowatt"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "VFD",
		ManufacturerKeywords: []string{"abb", "schneider", "siemens", "danfoss", "yaskawa"},
		ModelKeywords:        []string{"vfd", "variable frequency", "inverter", "drive"},
		FreeTextKeywords:     []string{"vfd", "variable frequency drive", "inverter", "drive"},
		SizeUnitKeywords:     []string{"hp", "horsepower", "kw", "kilowatt"},
		BaseConfidence:       0.8,
	},

	// Air Compressors
	{
		AssetType:            "Air Compressor",
		ManufacturerKeywords: []string{"ingersoll rand", "atlas copco", "kaeser", "quincy"},
		ModelKeywords:        []string{"compressor", "air compressor"},
		FreeTextKeywords:     []string{"air compressor", "compressor", "pneumatic"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute", "hp", "horsepower"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Air Compressed (Dryer)",
		ManufacturerKeywords: []string{"ingersoll rand", "atlas copco", "kaeser", "quincy"},
		ModelKeywords:        []string{"dryer", "air dryer", "compressed air dryer"},
		FreeTextKeywords:     []string{"air dryer", "compressed air dryer", "dryer"},
		SizeUnitKeywords:     []string{"cfm", "cubic feet per minute", "hp", "horsepower"},
		BaseConfidence:       0.9,
	},

	// Controls
	{
		AssetType:            "Controls",
		ManufacturerKeywords: []string{"honeywell", "johnson controls", "siemens", "schneider"},
		ModelKeywords:        []string{"controls", "controller", "thermostat", "dcc"},
		FreeTextKeywords:     []string{"controls", "controller", "thermostat", "dcc", "building automation"},
		SizeUnitKeywords:     []string{"points", "inputs", "outputs"},
		BaseConfidence:       0.8,
	},

	// Domestic Hot Water
	{
		AssetType:            "Domestic Hot Water Heater (Tank)",
		ManufacturerKeywords: []string{"rheem", "a.o. smith", "bradford white", "ruud"},
		ModelKeywords:        []string{"water heater", "dhw", "tank"},
		FreeTextKeywords:     []string{"water heater", "domestic hot water", "dhw", "tank"},
		SizeUnitKeywords:     []string{"gallons", "btu", "btuh"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Domestic Hot Water Heater (Tankless)",
		ManufacturerKeywords: []string{"rheem", "a.o. smith", "bradford white", "ruud"},
		ModelKeywords:        []string{"water heater", "dhw", "tankless"},
		FreeTextKeywords:     []string{"water heater", "domestic hot water", "dhw", "tankless"},
		SizeUnitKeywords:     []string{"gallons", "btu", "btuh"},
		BaseConfidence:       0.9,
	},

	// Electrical Equipment
	{
		AssetType:            "Electrical- Generator",
		ManufacturerKeywords: []string{"caterpillar", "kohler", "generac", "cummins"},
		ModelKeywords:        []string{"generator", "gen", "genset"},
		FreeTextKeywords:     []string{"generator", "genset", "backup power", "emergency power"},
		SizeUnitKeywords:     []string{"kw", "kilowatt", "hp", "horsepower"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Electrical- Distribution Panel",
		ManufacturerKeywords: []string{"square d", "siemens", "eaton", "schneider"},
		ModelKeywords:        []string{"panel", "distribution", "electrical panel"},
		FreeTextKeywords:     []string{"panel", "distribution panel", "electrical panel", "breaker panel"},
		SizeUnitKeywords:     []string{"amps", "amperes", "volts"},
		BaseConfidence:       0.8,
	},

	// Refrigeration
	{
		AssetType:            "Refrigerator or Freezer",
		ManufacturerKeywords: []string{"true", "hobart", "traulsen", "beverage air"},
		ModelKeywords:        []string{"refrigerator", "freezer", "walk-in"},
		FreeTextKeywords:     []string{"refrigerator", "freezer", "walk-in", "cold storage"},
		SizeUnitKeywords:     []string{"cubic feet", "cu ft", "gallons"},
		BaseConfidence:       0.9,
	},
	{
		AssetType:            "Ice Machine",
		ManufacturerKeywords: []string{"hoshizaki", "manitowoc", "scotsman", "ice-o-matic"},
		ModelKeywords:        []string{"ice machine", "ice maker", "ice"},
		FreeTextKeywords:     []string{"ice machine", "ice maker", "ice", "ice production"},
		SizeUnitKeywords:     []string{"lbs", "pounds", "kg", "kilograms"},
		BaseConfidence:       0.9,
	},
}
