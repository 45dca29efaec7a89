// Package i18n loads and serves translation catalogs for a plugin text
// domain.
//
// Catalogs are flat JSON files named "<domain>-<locale>.json" inside the
// plugin's languages directory, one per locale. Lookup negotiates the best
// available locale with golang.org/x/text/language and falls back to the
// default locale, then to the message key itself, so a missing translation
// never breaks rendering.
package i18n
