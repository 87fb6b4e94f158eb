// Package documents defines the Colombian identity-document taxonomy:
// document types, sides, the extracted-field set, per-type critical-field
// tables, and the merge and alert rules applied to extraction results.
package documents

// Type identifies a supported Colombian identity document.
type Type string

// Supported document types.
const (
	CedulaCiudadania        Type = "cedula_ciudadania"
	TarjetaIdentidad        Type = "tarjeta_identidad"
	RegistroCivilNacimiento Type = "registro_civil_nacimiento"
	RegistroCivilMatrimonio Type = "registro_civil_matrimonio"
	RegistroCivilDefuncion  Type = "registro_civil_defuncion"
	TypeUnknown             Type = "unknown"
)

// Side identifies which physical face of a document an image shows.
type Side string

// Document sides.
const (
	SideFront        Side = "front"
	SideBack         Side = "back"
	SideFullDocument Side = "full_document"
	SideSinglePage   Side = "single_page"
	SideUnknown      Side = "unknown"
)

var twoSided = map[Type]bool{
	CedulaCiudadania: true,
	TarjetaIdentidad: true,
}

var singlePage = map[Type]bool{
	RegistroCivilNacimiento: true,
	RegistroCivilMatrimonio: true,
	RegistroCivilDefuncion:  true,
}

// TwoSided reports whether the document type requires a front and a back capture.
func (t Type) TwoSided() bool {
	return twoSided[t]
}

// SinglePage reports whether the document type is captured in one page.
func (t Type) SinglePage() bool {
	return singlePage[t]
}

var typeLabels = map[Type]string{
	CedulaCiudadania:        "Cédula de Ciudadanía",
	TarjetaIdentidad:        "Tarjeta de Identidad",
	RegistroCivilNacimiento: "Registro Civil de Nacimiento",
	RegistroCivilMatrimonio: "Registro Civil de Matrimonio",
	RegistroCivilDefuncion:  "Registro Civil de Defunción",
	TypeUnknown:             "Documento desconocido",
}

// Label returns the Spanish display name for the document type.
func (t Type) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "documento"
}
