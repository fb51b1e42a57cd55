// Package i18n holds the UI strings the line item editor and the API client
// need, backed by an x/text message catalog.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resolves a message key. Unknown keys come back unchanged.
type Translator interface {
	T(key string) string
}

var messages = map[language.Tag]map[string]string{
	language.English: {
		"per":       "per",
		"hour":      "hour",
		"day":       "day",
		"week":      "week",
		"month":     "month",
		"per_hour":  "per hour",
		"per_day":   "per day",
		"per_week":  "per week",
		"per_month": "per month",
		"add_item":  "Add Item",
		"add_line":  "Add Line",

		"no_product_selected":  "No product selected",
		"no_description":       "No description",
		"no_unit":              "No unit",
		"no_cost":              "No cost",
		"no_quantity":          "No quantity",
		"no_billable_time":     "No billable time",
		"no_total":             "No total",
		"no_discount":          "No discount",
		"no_tax":               "No tax",
		"no_value":             "No value",
		"created_resource":     "Successfully created resource",
		"updated_resource":     "Successfully updated resource",
		"archived_resource":    "Successfully archived resource",
		"restored_resource":    "Successfully restored resource",
		"deleted_resource":     "Successfully deleted resource",
		"created_employee":     "Successfully created employee",
		"updated_employee":     "Successfully updated employee",
		"activated_employee":   "Successfully activated employee",
		"deactivated_employee": "Successfully deactivated employee",
		"archived_employee":    "Successfully archived employee",
		"restored_employee":    "Successfully restored employee",
		"deleted_employee":     "Successfully deleted employee",
		"cache_cleared":        "Successfully cleared cache",
		"processing":           "Processing...",
		"error_title":          "Something went wrong",
	},
	language.German: {
		"per":       "pro",
		"hour":      "Stunde",
		"day":       "Tag",
		"week":      "Woche",
		"month":     "Monat",
		"per_hour":  "pro Stunde",
		"per_day":   "pro Tag",
		"per_week":  "pro Woche",
		"per_month": "pro Monat",
		"add_item":  "Artikel hinzufügen",
		"add_line":  "Zeile hinzufügen",
	},
	language.French: {
		"per":       "par",
		"hour":      "heure",
		"day":       "jour",
		"week":      "semaine",
		"month":     "mois",
		"per_hour":  "par heure",
		"per_day":   "par jour",
		"per_week":  "par semaine",
		"per_month": "par mois",
		"add_item":  "Ajouter un article",
		"add_line":  "Ajouter une ligne",
	},
	language.Spanish: {
		"per":       "por",
		"hour":      "hora",
		"day":       "día",
		"week":      "semana",
		"month":     "mes",
		"per_hour":  "por hora",
		"per_day":   "por día",
		"per_week":  "por semana",
		"per_month": "por mes",
		"add_item":  "Agregar artículo",
		"add_line":  "Agregar línea",
	},
}

// Catalog is an immutable set of translations. Safe for concurrent use.
type Catalog struct {
	builder *catalog.Builder
	matcher language.Matcher
}

var supported = []language.Tag{language.English, language.German, language.French, language.Spanish}

// NewCatalog builds the catalog. Keys missing in a language use the English text.
func NewCatalog() *Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	base := messages[language.English]
	for _, tag := range supported {
		entries := messages[tag]
		for key, msg := range base {
			if translated, ok := entries[key]; ok {
				msg = translated
			}
			// SetString only fails for malformed tags, which we never pass.
			_ = b.SetString(tag, key, msg)
		}
	}
	return &Catalog{builder: b, matcher: language.NewMatcher(supported)}
}

// Translator returns a translator for a BCP-47 locale such as "de" or "en_US".
// Unsupported locales fall back to English.
func (c *Catalog) Translator(locale string) Translator {
	_, index := language.MatchStrings(c.matcher, normalizeLocale(locale))
	return printer{p: message.NewPrinter(supported[index], message.Catalog(c.builder))}
}

type printer struct {
	p *message.Printer
}

func (t printer) T(key string) string {
	return t.p.Sprintf(key)
}

func normalizeLocale(locale string) string {
	out := []byte(locale)
	for i, ch := range out {
		if ch == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}

var defaultCatalog = NewCatalog()

// English returns the default English translator.
func English() Translator {
	return defaultCatalog.Translator("en")
}

// For returns a translator from the default catalog.
func For(locale string) Translator {
	return defaultCatalog.Translator(locale)
}
