// Package i18n provides language selection and translation lookup for the
// bilingual (English/Spanish) site content.
package i18n

// Lang identifies a supported content language.
type Lang string

const (
	EN Lang = "en"
	ES Lang = "es"
)

// DefaultLang is served when no language is requested or the requested
// language is unknown.
const DefaultLang = EN

// Parse maps a raw language string to a supported Lang, falling back to
// DefaultLang for anything unrecognized.
func Parse(s string) Lang {
	switch s {
	case "en":
		return EN
	case "es":
		return ES
	default:
		return DefaultLang
	}
}

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == EN || l == ES
}

// DisplayName returns the human-readable name of the language, used in the
// lead email's LANGUAGE row.
func (l Lang) DisplayName() string {
	if l == ES {
		return "Espanol"
	}
	return "English"
}

// ui holds shared translated strings keyed by dotted identifiers, mirroring
// the site's translation tables. Per-item content copy lives alongside the
// content records themselves; this table carries cross-cutting strings.
var ui = map[Lang]map[string]string{
	EN: {
		"content.pricing.label":  "System Resource Allocation",
		"content.projects.label": "Project Logs",
		"content.faq.label":      "Knowledge Base",
		"content.reviews.label":  "User Reviews",
	},
	ES: {
		"content.pricing.label":  "Asignacion de Recursos",
		"content.projects.label": "Registro de Proyectos",
		"content.faq.label":      "Base de Conocimiento",
		"content.reviews.label":  "Resenas de Usuarios",
	},
}

// T returns the translation for key in lang, falling back to DefaultLang and
// finally to the key itself if no translation exists.
func T(lang Lang, key string) string {
	if table, ok := ui[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := ui[DefaultLang][key]; ok {
		return s
	}
	return key
}
