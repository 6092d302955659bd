// Package storage implementa el ImageStore: guarda la imagen de un cliente
// bajo una clave derivada de su nombre y retorna la referencia estable.
package storage

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// extensionByType extensión de archivo según el media type declarado.
var extensionByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// StorageKey deriva la clave de almacenamiento: slug del nombre a mostrar más
// la extensión inferida del media type. La misma entrada produce la misma
// clave, así que un reintento con el mismo nombre sobrescribe (aceptado).
func StorageKey(displayName, mediaType string) string {
	ext := extensionByType[mediaType]
	return slugify(displayName) + ext
}

// slugify normaliza el nombre: quita diacríticos (NFD + remover marcas),
// pasa a minúsculas y colapsa todo lo no alfanumérico en guiones.
func slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	lastDash := true // evita guion inicial
	for _, r := range strings.ToLower(plain) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
