package classifier

import "fmt"

// classificationPrompt instructs the vision model to classify a Colombian
// identity document and extract its visible fields as strict JSON. The
// response contract mirrors the Result type.
const classificationPrompt = `Eres un experto en documentos de identidad colombianos. Analiza la imagen proporcionada, clasifícala y extrae todos los datos visibles.

TIPOS DE DOCUMENTO que debes identificar:
- cedula_ciudadania: Cédula de Ciudadanía colombiana (documento plastificado con foto, nombre, número)
- tarjeta_identidad: Tarjeta de Identidad colombiana (para menores de edad, similar a cédula)
- registro_civil_nacimiento: Registro Civil de Nacimiento (documento en papel, formato formulario)
- registro_civil_matrimonio: Registro Civil de Matrimonio (documento en papel)
- registro_civil_defuncion: Registro Civil de Defunción (documento en papel)
- unknown: No es ninguno de los documentos anteriores

CARAS del documento:
- front: Cara frontal (tiene la foto y datos principales)
- back: Cara trasera (tiene código de barras, huella, datos adicionales)
- full_document: La imagen/PDF contiene AMBAS caras del documento
- single_page: Documento de una sola página (registros civiles)
- unknown: No se puede determinar

INSTRUCCIONES DE CLASIFICACIÓN:
1. Determina el tipo de documento
2. Determina qué cara se muestra
3. Evalúa si es un documento válido (no una fotocopia de mala calidad, no un documento de otro país, no algo completamente diferente)
4. Evalúa si el documento es LEGIBLE (texto claro, no borroso, no cortado, bien iluminado)
5. Indica si la imagen contiene ambas caras del documento
6. Proporciona retroalimentación útil en español sencillo para el usuario

INSTRUCCIONES DE EXTRACCIÓN DE DATOS:
Extrae todos los campos visibles del documento. Para cada campo devuelve:
- "value": El valor extraído (string) o null si no es visible/legible
- "confidence": Un número entre 0.0 y 1.0 indicando tu confianza en la extracción

REGLAS DE FORMATO:
- Fechas: DD/MM/YYYY (ej: 01/01/1990)
- Nombres y apellidos: MAYÚSCULAS (ej: "JEISON EDUARDO")
- Número de documento: solo dígitos (ej: "1234567890")
- Sexo: "M" o "F"
- Lugares: MAYÚSCULAS (ej: "MEDELLÍN, ANTIOQUIA")

CAMPOS A EXTRAER según tipo de documento:
- Cédula/Tarjeta de Identidad: numeroDocumento, nombres, apellidos, fechaNacimiento, lugarNacimiento, sexo, fechaExpedicion, lugarExpedicion
- Registro Civil de Nacimiento: numeroDocumento, nombres, apellidos, fechaNacimiento, lugarNacimiento, sexo, nombresPadre, apellidosPadre, nombresMadre, apellidosMadre
- Registro Civil de Matrimonio: numeroDocumento, contrayente1Nombres, contrayente1Apellidos, contrayente1Documento, contrayente2Nombres, contrayente2Apellidos, contrayente2Documento
- Registro Civil de Defunción: numeroDocumento, nombres, apellidos, fechaDefuncion, lugarDefuncion

Para campos que NO aplican al tipo de documento detectado, devuelve {"value": null, "confidence": 0.0}.
Para campos que aplican pero NO son legibles, devuelve {"value": null, "confidence": 0.0}.

RESPUESTA:
Responde ÚNICAMENTE con un objeto JSON con esta estructura exacta:
{
  "documentType": "...",
  "documentSide": "...",
  "isValidDocument": true,
  "isLegible": true,
  "containsBothSides": false,
  "userFeedback": "...",
  "extractedData": { "numeroDocumento": {"value": "...", "confidence": 0.0}, ... }
}
El objeto "extractedData" debe incluir los 20 campos listados arriba.`

// composePrompt appends the optional session context hint to the base prompt.
func composePrompt(contextHint string) string {
	if contextHint == "" {
		return classificationPrompt
	}
	return fmt.Sprintf("%s\n\nCONTEXTO ADICIONAL: %s", classificationPrompt, contextHint)
}
