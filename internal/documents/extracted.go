package documents

// ExtractedField is a single extracted attribute with its model confidence.
// A nil Value means the field was not visible, not legible, or does not apply
// to the detected document type; confidence is 0.0 in that case.
type ExtractedField struct {
	Value      *string `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ExtractedData is the closed set of attributes extractable across all
// supported document types. Fields that do not apply to a given type carry
// a nil value and zero confidence.
type ExtractedData struct {
	NumeroDocumento ExtractedField `json:"numeroDocumento"`
	Nombres         ExtractedField `json:"nombres"`
	Apellidos       ExtractedField `json:"apellidos"`
	FechaNacimiento ExtractedField `json:"fechaNacimiento"`
	LugarNacimiento ExtractedField `json:"lugarNacimiento"`
	Sexo            ExtractedField `json:"sexo"`
	FechaExpedicion ExtractedField `json:"fechaExpedicion"`
	LugarExpedicion ExtractedField `json:"lugarExpedicion"`

	// Registro Civil de Nacimiento
	NombresPadre   ExtractedField `json:"nombresPadre"`
	ApellidosPadre ExtractedField `json:"apellidosPadre"`
	NombresMadre   ExtractedField `json:"nombresMadre"`
	ApellidosMadre ExtractedField `json:"apellidosMadre"`

	// Registro Civil de Matrimonio
	Contrayente1Nombres   ExtractedField `json:"contrayente1Nombres"`
	Contrayente1Apellidos ExtractedField `json:"contrayente1Apellidos"`
	Contrayente1Documento ExtractedField `json:"contrayente1Documento"`
	Contrayente2Nombres   ExtractedField `json:"contrayente2Nombres"`
	Contrayente2Apellidos ExtractedField `json:"contrayente2Apellidos"`
	Contrayente2Documento ExtractedField `json:"contrayente2Documento"`

	// Registro Civil de Defunción
	FechaDefuncion ExtractedField `json:"fechaDefuncion"`
	LugarDefuncion ExtractedField `json:"lugarDefuncion"`
}

// FieldNames lists every extracted field name in declaration order. The set
// is closed; alert and merge logic iterate it rather than using reflection.
var FieldNames = []string{
	"numeroDocumento", "nombres", "apellidos",
	"fechaNacimiento", "lugarNacimiento", "sexo",
	"fechaExpedicion", "lugarExpedicion",
	"nombresPadre", "apellidosPadre", "nombresMadre", "apellidosMadre",
	"contrayente1Nombres", "contrayente1Apellidos", "contrayente1Documento",
	"contrayente2Nombres", "contrayente2Apellidos", "contrayente2Documento",
	"fechaDefuncion", "lugarDefuncion",
}

// Field returns a pointer to the named field, or nil for an unknown name.
func (d *ExtractedData) Field(name string) *ExtractedField {
	switch name {
	case "numeroDocumento":
		return &d.NumeroDocumento
	case "nombres":
		return &d.Nombres
	case "apellidos":
		return &d.Apellidos
	case "fechaNacimiento":
		return &d.FechaNacimiento
	case "lugarNacimiento":
		return &d.LugarNacimiento
	case "sexo":
		return &d.Sexo
	case "fechaExpedicion":
		return &d.FechaExpedicion
	case "lugarExpedicion":
		return &d.LugarExpedicion
	case "nombresPadre":
		return &d.NombresPadre
	case "apellidosPadre":
		return &d.ApellidosPadre
	case "nombresMadre":
		return &d.NombresMadre
	case "apellidosMadre":
		return &d.ApellidosMadre
	case "contrayente1Nombres":
		return &d.Contrayente1Nombres
	case "contrayente1Apellidos":
		return &d.Contrayente1Apellidos
	case "contrayente1Documento":
		return &d.Contrayente1Documento
	case "contrayente2Nombres":
		return &d.Contrayente2Nombres
	case "contrayente2Apellidos":
		return &d.Contrayente2Apellidos
	case "contrayente2Documento":
		return &d.Contrayente2Documento
	case "fechaDefuncion":
		return &d.FechaDefuncion
	case "lugarDefuncion":
		return &d.LugarDefuncion
	}
	return nil
}

// FieldLabels maps field names to their Spanish display labels.
var FieldLabels = map[string]string{
	"numeroDocumento":       "Número de documento",
	"nombres":               "Nombres",
	"apellidos":             "Apellidos",
	"fechaNacimiento":       "Fecha de nacimiento",
	"lugarNacimiento":       "Lugar de nacimiento",
	"sexo":                  "Sexo",
	"fechaExpedicion":       "Fecha de expedición",
	"lugarExpedicion":       "Lugar de expedición",
	"nombresPadre":          "Nombres del padre",
	"apellidosPadre":        "Apellidos del padre",
	"nombresMadre":          "Nombres de la madre",
	"apellidosMadre":        "Apellidos de la madre",
	"contrayente1Nombres":   "Nombres contrayente 1",
	"contrayente1Apellidos": "Apellidos contrayente 1",
	"contrayente1Documento": "Documento contrayente 1",
	"contrayente2Nombres":   "Nombres contrayente 2",
	"contrayente2Apellidos": "Apellidos contrayente 2",
	"contrayente2Documento": "Documento contrayente 2",
	"fechaDefuncion":        "Fecha de defunción",
	"lugarDefuncion":        "Lugar de defunción",
}

// CriticalFields maps each document type to the fields whose low-confidence
// extraction must raise a manual-review alert.
var CriticalFields = map[Type][]string{
	CedulaCiudadania: {
		"numeroDocumento", "nombres", "apellidos", "fechaNacimiento",
	},
	TarjetaIdentidad: {
		"numeroDocumento", "nombres", "apellidos", "fechaNacimiento",
	},
	RegistroCivilNacimiento: {
		"numeroDocumento", "nombres", "apellidos", "fechaNacimiento",
		"nombresPadre", "apellidosPadre", "nombresMadre", "apellidosMadre",
	},
	RegistroCivilMatrimonio: {
		"numeroDocumento", "nombres", "apellidos",
		"contrayente1Nombres", "contrayente1Apellidos",
		"contrayente2Nombres", "contrayente2Apellidos",
	},
	RegistroCivilDefuncion: {
		"numeroDocumento", "nombres", "apellidos", "fechaDefuncion",
	},
}

// defaultCriticalFields applies when a document type has no entry in CriticalFields.
var defaultCriticalFields = []string{"numeroDocumento", "nombres", "apellidos"}
