package slug

import (
	"regexp"
	"strings"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// diacritics transliterates common accented Latin characters to ASCII so toy
// and brand names render as clean URL slugs.
var diacritics = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ä", "a", "ã", "a", "å", "a",
	"ç", "c", "č", "c",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i", "ı", "i",
	"ñ", "n",
	"ò", "o", "ó", "o", "ô", "o", "ö", "o", "õ", "o", "ø", "o",
	"ş", "s", "š", "s", "ß", "ss",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ý", "y", "ÿ", "y",
	"ž", "z", "ğ", "g",
)

// Generate creates a URL-friendly slug from the given display name.
//
// Examples:
//   - "Red Car" → "red-car"
//   - "Café Racer (2024)" → "cafe-racer-2024"
//   - "  LEGO   City  " → "lego-city"
//
// Generate is pure and idempotent: feeding a slug back in returns it unchanged.
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = diacritics.Replace(s)

	// Collapse any non-alphanumeric run into a single hyphen.
	s = slugRegexp.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
