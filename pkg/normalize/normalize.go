// Package normalize centraliza la normalización de texto que comparten el
// sugeridor de categorías y el buscador léxico. Ambos dependen de que la
// normalización sea exactamente la misma, por eso vive en un solo lugar.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents descompone a NFD, elimina las marcas combinantes (tildes,
// diéresis) y recompone. "Martíllo" → "Martillo", "señal" → "senal".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize convierte a minúsculas, quita diacríticos y descarta todo carácter
// fuera de [a-z0-9\s-]. Los espacios se colapsan a uno solo y se recortan los
// extremos. El resultado es el flujo de texto canónico sobre el que operan
// todas las comparaciones del motor.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens normaliza y divide en tokens por espacios, descartando los de menos
// de 2 caracteres (artículos sueltos, ruido de OCR, etc.).
func Tokens(s string) []string {
	fields := strings.Fields(Normalize(s))
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CodeTokens divide un código de producto en fragmentos por '-' y '_' y los
// normaliza. "HER-001" → ["her", "001"]. Fragmentos de menos de 2 caracteres
// se descartan igual que en Tokens.
func CodeTokens(code string) []string {
	frags := strings.FieldsFunc(code, func(r rune) bool { return r == '-' || r == '_' })
	var tokens []string
	for _, f := range frags {
		n := Normalize(f)
		if len(n) >= 2 {
			tokens = append(tokens, n)
		}
	}
	return tokens
}
