// Package iec contiene las reglas puras sobre códigos IEC (Import Export Code) y
// la generación de identificadores de usuario.
package iec

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize devuelve la forma canónica de un código IEC: compatibilidad Unicode (NFKC, p. ej.
// dígitos de ancho completo pegados desde un PDF), sin espacios en los extremos y en mayúsculas.
// Es idempotente: Normalize(Normalize(c)) == Normalize(c).
func Normalize(raw string) string {
	s := norm.NFKC.String(raw)
	// cases.Caser no es seguro entre goroutines: se crea uno por llamada.
	s = cases.Upper(language.Und).String(s)
	return strings.TrimSpace(norm.NFKC.String(s))
}

// MaxCodeLength longitud máxima (en runas) de un código normalizado; coincide con iec_code VARCHAR(20).
const MaxCodeLength = 20

// ValidLength informa si el código normalizado cabe en el almacén.
func ValidLength(code string) bool {
	return utf8.RuneCountInString(code) <= MaxCodeLength
}
