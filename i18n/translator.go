// Package i18n provides localized titles for diagnostic codes. The CLI uses
// it when printing diagnostics; the library itself always records English
// messages.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator retrieves localized messages for diagnostic codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "ref").
type Translator interface {
	Message(code string, data map[string]string) string
}

// Keys with a ".field" or ".ref" suffix take the matching data value as
// their single argument.
var titles = map[language.Tag]map[string]string{
	language.English: {
		"structural":               "malformed structure",
		"unknown_field":            "unknown field",
		"unknown_field.field":      "unknown field %s",
		"type_mismatch":            "invalid type",
		"invalid_value":            "invalid value",
		"unresolved_reference":     "unresolved reference",
		"unresolved_reference.ref": "unresolved reference %s",
		"external_reference":       "external reference not resolved",
		"circular_reference":       "circular reference",
		"depth_exceeded":           "nesting too deep",
		"duplicate_key":            "duplicate key",
		"unsupported_version":      "unsupported version",
	},
	language.Japanese: {
		"structural":               "構造が不正です",
		"unknown_field":            "未知のフィールドです",
		"unknown_field.field":      "未知のフィールドです: %s",
		"type_mismatch":            "型が不正です",
		"invalid_value":            "値が不正です",
		"unresolved_reference":     "参照を解決できません",
		"unresolved_reference.ref": "参照を解決できません: %s",
		"external_reference":       "外部参照は解決されませんでした",
		"circular_reference":       "参照が循環しています",
		"depth_exceeded":           "ネストが深すぎます",
		"duplicate_key":            "キーが重複しています",
		"unsupported_version":      "未対応のバージョンです",
	},
}

var builtin = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range titles {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// catalogTranslator is the built-in Translator backed by an x/text message
// catalog.
type catalogTranslator struct{ p *message.Printer }

func newCatalogTranslator(tag language.Tag) catalogTranslator {
	return catalogTranslator{p: message.NewPrinter(tag, message.Catalog(builtin))}
}

func (t catalogTranslator) Message(code string, data map[string]string) string {
	for _, arg := range []string{"field", "ref"} {
		if v := data[arg]; v != "" {
			key := code + "." + arg
			if _, ok := titles[language.English][key]; ok {
				return t.p.Sprintf(key, v)
			}
		}
	}
	// Unknown codes are rendered as themselves.
	return t.p.Sprintf(message.Key(code, code))
}

var currentTranslator Translator = newCatalogTranslator(language.English)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	tag := language.English
	if lang == "ja" {
		tag = language.Japanese
	}
	currentTranslator = newCatalogTranslator(tag)
}

// SetTranslator replaces the Translator implementation (not limited to the
// catalog version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = newCatalogTranslator(language.English)
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
