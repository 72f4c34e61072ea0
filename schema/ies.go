package schema

// IESNA LM-63 field names, in template order.
const (
	IESHeader                   = "header"
	IESTest                     = "test"
	IESTestLab                  = "testlab"
	IESIssueDate                = "issuedate"
	IESManufac                  = "manufac"
	IESLumCat                   = "lumcat"
	IESLuminaire                = "luminaire"
	IESLampCat                  = "lampcat"
	IESLamp                     = "lamp"
	IESNumberOfLamps            = "number_of_lamps"
	IESLumensPerLamp            = "lumens_per_lamp"
	IESCandelaMultiplier        = "candela_multiplier"
	IESNumberOfVerticalAngles   = "number_of_vertical_angles"
	IESNumberOfHorizontalAngles = "number_of_horizontal_angles"
	IESPhotometricType          = "photometric_type"
	IESUnitsType                = "units_type"
	IESWidth                    = "width"
	IESLength                   = "length"
	IESHeight                   = "height"
	IESBallastFactor            = "ballast_factor"
	IESFutureUse                = "future_use"
	IESInputWatts               = "input_watts"
	IESVerticalAngles           = "vertical_angles"
	IESHorizontalAngles         = "horizontal_angles"
	IESCandelaValues            = "candela_values"
)

// IESDefaultHeader is the format identifier written on the first line.
const IESDefaultHeader = "IESNA:LM-63-2002"

// IES is the IESNA LM-63 registry.
var IES = New("ies",
	Field{Name: IESHeader, Kind: KindString, Required: true, Default: IESDefaultHeader},
	stringField(IESTest),
	stringField(IESTestLab),
	stringField(IESIssueDate),
	stringField(IESManufac),
	stringField(IESLumCat),
	stringField(IESLuminaire),
	stringField(IESLampCat),
	stringField(IESLamp),
	intField(IESNumberOfLamps),
	intField(IESLumensPerLamp),
	defaultFloatField(IESCandelaMultiplier, 1),
	countField(IESNumberOfVerticalAngles),
	countField(IESNumberOfHorizontalAngles),
	Field{
		Name: IESPhotometricType, Kind: KindInteger, Required: true, Default: 1, Coerce: []Coercer{ToInt},
		Min: Limit(1), Max: Limit(3),
	},
	Field{
		Name: IESUnitsType, Kind: KindInteger, Required: true, Default: 2, Coerce: []Coercer{ToInt},
		Min: Limit(1), Max: Limit(2),
	},
	floatField(IESWidth),
	floatField(IESLength),
	floatField(IESHeight),
	defaultFloatField(IESBallastFactor, 1),
	Field{
		Name: IESFutureUse, Kind: KindInteger, Required: true, Default: 1, Coerce: []Coercer{ToInt},
		Allowed: []any{1},
	},
	floatField(IESInputWatts),
	floatListField(IESVerticalAngles),
	floatListField(IESHorizontalAngles),
	floatListField(IESCandelaValues),
)

// IESKeyword binds a bracketed keyword line of the header block to a field.
type IESKeyword struct {
	Keyword string
	Field   string
}

// IESKeywords lists the keyword lines in the order they are written.
var IESKeywords = []IESKeyword{
	{"TEST", IESTest},
	{"TESTLAB", IESTestLab},
	{"ISSUEDATE", IESIssueDate},
	{"MANUFAC", IESManufac},
	{"LUMCAT", IESLumCat},
	{"LUMINAIRE", IESLuminaire},
	{"LAMPCAT", IESLampCat},
	{"LAMP", IESLamp},
}

// IESKeywordField returns the field bound to keyword.
func IESKeywordField(keyword string) (string, bool) {
	for _, k := range IESKeywords {
		if k.Keyword == keyword {
			return k.Field, true
		}
	}

	return "", false
}
