package schema

// EULUMDAT field names, in file order. The comment is the 1-based field
// position; for the first 26 it is also the line number.
const (
	LDTCompany             = "company"               // 1
	LDTTypeIndicator       = "type_indicator"        // 2
	LDTSymmetryIndicator   = "symmetry_indicator"    // 3
	LDTNumberMc            = "number_mc"             // 4
	LDTDistanceDc          = "distance_dc"           // 5
	LDTNumberNg            = "number_ng"             // 6
	LDTDistanceDg          = "distance_dg"           // 7
	LDTReportNo            = "report_no"             // 8
	LDTLuminaireName       = "luminaire_name"        // 9
	LDTLuminaireNo         = "luminaire_no"          // 10
	LDTFileName            = "file_name"             // 11
	LDTDateUser            = "date_user"             // 12
	LDTLuminaireLength     = "luminaire_length"      // 13
	LDTLuminaireWidth      = "luminaire_width"       // 14
	LDTLuminaireHeight     = "luminaire_height"      // 15
	LDTLuminousLength      = "luminous_length"       // 16
	LDTLuminousWidth       = "luminous_width"        // 17
	LDTLuminousHeightC0    = "luminous_height_c0"    // 18
	LDTLuminousHeightC90   = "luminous_height_c90"   // 19
	LDTLuminaireHeightC180 = "luminaire_height_c180" // 20
	LDTLuminaireHeightC270 = "luminaire_height_c270" // 21
	LDTDFF                 = "dff"                   // 22
	LDTLORL                = "lorl"                  // 23
	LDTConversionFactor    = "conversion_factor"     // 24
	LDTTilt                = "tilt"                  // 25
	LDTNumberN             = "number_n"              // 26
	LDTLamps               = "lamps"                 // 27: 6 lines per lamp, number_n times
	LDTDirectRatios        = "direct_ratios"         // 28
	LDTAnglesC             = "angles_c"              // 29
	LDTAnglesG             = "angles_g"              // 30
	LDTLuminousIntensities = "luminous_intensities"  // 31
)

// Lamp record field names, in file order.
const (
	LampNumberOf   = "number_of"
	LampTypeOf     = "type_of"
	LampTotalFlux  = "total_flux"
	LampColorTemp  = "color_temp"
	LampCRI        = "cri"
	LampTotalPower = "total_power"
)

// LDT layout constants.
const (
	// LDTScalarLines is the number of single-value lines opening the file.
	LDTScalarLines = 26
	// LDTLampLines is the number of lines per lamp record.
	LDTLampLines = 6
	// LDTDirectRatioLines is the fixed length of the direct ratio table.
	LDTDirectRatioLines = 10
	// LDTPositions is the highest 1-based field position.
	LDTPositions = 31
)

// Lamp is the schema of one lamp group record.
var Lamp = New("lamp",
	Field{Name: LampNumberOf, Kind: KindInteger, Required: true, Coerce: []Coercer{ToInt}},
	Field{Name: LampTypeOf, Kind: KindString, Required: true},
	Field{Name: LampTotalFlux, Kind: KindInteger, Required: true, Coerce: []Coercer{ToInt, FloatToInt}},
	Field{
		Name: LampColorTemp, Kind: KindInteger, Required: true, Default: 3000,
		Coerce: []Coercer{ToInt, DigitRun},
		Min:    Limit(2400), Max: Limit(6500),
	},
	Field{
		Name: LampCRI, Kind: KindInteger, Required: true, Default: 80,
		Coerce: []Coercer{ToInt, DigitRun},
		Min:    Limit(0), Max: Limit(100),
	},
	Field{Name: LampTotalPower, Kind: KindFloat, Required: true, Coerce: []Coercer{ToFloat}},
)

// LDT is the EULUMDAT registry.
var LDT = New("ldt",
	stringField(LDTCompany),
	Field{
		Name: LDTTypeIndicator, Kind: KindInteger, Required: true, Coerce: []Coercer{ToInt},
		Min: Limit(1), Max: Limit(3),
	},
	Field{
		Name: LDTSymmetryIndicator, Kind: KindInteger, Required: true, Coerce: []Coercer{ToInt},
		Min: Limit(1), Max: Limit(5),
	},
	countField(LDTNumberMc),
	Field{Name: LDTDistanceDc, Kind: KindInteger, Required: true, Coerce: []Coercer{ToInt, DigitRun}},
	countField(LDTNumberNg),
	floatField(LDTDistanceDg),
	stringField(LDTReportNo),
	stringField(LDTLuminaireName),
	stringField(LDTLuminaireNo),
	stringField(LDTFileName),
	stringField(LDTDateUser),
	floatField(LDTLuminaireLength),
	floatField(LDTLuminaireWidth),
	floatField(LDTLuminaireHeight),
	floatField(LDTLuminousLength),
	floatField(LDTLuminousWidth),
	defaultFloatField(LDTLuminousHeightC0, 0),
	defaultFloatField(LDTLuminousHeightC90, 0),
	defaultFloatField(LDTLuminaireHeightC180, 0),
	defaultFloatField(LDTLuminaireHeightC270, 0),
	Field{
		Name: LDTDFF, Kind: KindFloat, Required: true, Default: 100.0, Coerce: []Coercer{ToFloat},
		Min: Limit(0), Max: Limit(100),
	},
	Field{
		Name: LDTLORL, Kind: KindFloat, Required: true, Coerce: []Coercer{ToFloat},
		Min: Limit(0), Max: Limit(100),
	},
	Field{
		Name: LDTConversionFactor, Kind: KindFloat, Required: true, Coerce: []Coercer{ToFloat},
		Min: Limit(0), Max: Limit(1),
	},
	Field{
		Name: LDTTilt, Kind: KindFloat, Required: true, Coerce: []Coercer{ToFloat},
		Min: Limit(0), Max: Limit(90),
	},
	Field{Name: LDTNumberN, Kind: KindInteger, Default: 1, Coerce: []Coercer{ToInt}, Min: Limit(0)},
	Field{Name: LDTLamps, Kind: KindRecords, Required: true, Record: Lamp},
	floatListField(LDTDirectRatios),
	floatListField(LDTAnglesC),
	floatListField(LDTAnglesG),
	floatListField(LDTLuminousIntensities),
)

func stringField(name string) Field {
	return Field{Name: name, Kind: KindString, Required: true}
}

func intField(name string) Field {
	return Field{Name: name, Kind: KindInteger, Required: true, Coerce: []Coercer{ToInt}}
}

// countField is an integer that sizes a table and so cannot be negative.
func countField(name string) Field {
	f := intField(name)
	f.Min = Limit(0)

	return f
}

func floatField(name string) Field {
	return Field{Name: name, Kind: KindFloat, Required: true, Coerce: []Coercer{ToFloat}}
}

func defaultFloatField(name string, def float64) Field {
	f := floatField(name)
	f.Default = def

	return f
}

func floatListField(name string) Field {
	return Field{
		Name:     name,
		Kind:     KindList,
		Required: true,
		Elem:     &Field{Name: name, Kind: KindFloat, Required: true, Coerce: []Coercer{ToFloat}},
	}
}
