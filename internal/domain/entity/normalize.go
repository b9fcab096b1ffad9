package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza texto para comparaciones: recorta, colapsa espacios internos,
// elimina diacríticos y aplica case folding Unicode.
func Fold(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	// Los transformers tienen estado: se construye una cadena por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// NormalizeName es la clave de comparación para nombres de categoría y marca.
func NormalizeName(name string) string { return Fold(name) }

// ModelKey es la clave de unicidad de un número de modelo.
func ModelKey(model string) string { return Fold(model) }
