// Package textnorm normaliza texto libre para comparaciones insensibles a
// mayúsculas y acentos, y formatea cifras con las convenciones francesas que
// muestra la interfaz.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize pasa a minúsculas, elimina diacríticos y recorta espacios.
// Es total: ante una entrada que no se pueda transformar devuelve la versión en minúsculas.
func Normalize(text string) string {
	lower := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return strings.TrimSpace(lower)
	}
	return strings.TrimSpace(out)
}

var frPrinter = message.NewPrinter(language.French)

// FormatEuro formatea un importe con separadores franceses y dos decimales, ej. "19 018,53€".
func FormatEuro(amount decimal.Decimal) string {
	return frPrinter.Sprintf("%.2f", amount.Round(2).InexactFloat64()) + "€"
}

// FormatInt formatea un entero con el separador de miles francés.
func FormatInt(n int) string {
	return frPrinter.Sprintf("%d", n)
}
