// Package i18n localizes UI chrome strings. Lesson content itself is always
// Arabic and never passes through here.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang is the fallback interface language.
const DefaultLang = "ar"

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// Init loads the embedded catalogs and selects the interface language.
// Unknown languages fall back to Arabic.
func Init(lang string) error {
	bundle = i18n.NewBundle(language.Arabic)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales dir: %w", err)
	}
	for _, e := range entries {
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return fmt.Errorf("read locale file %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return fmt.Errorf("parse locale file %s: %w", e.Name(), err)
		}
	}

	if _, err := language.Parse(lang); err != nil {
		lang = DefaultLang
	}
	localizer = i18n.NewLocalizer(bundle, lang, DefaultLang)
	return nil
}

// T translates a message by ID. Missing translations fall back to the ID
// itself so the interface stays usable.
func T(msgID string) string {
	if localizer == nil {
		return msgID
	}
	s, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil {
		return msgID
	}
	return s
}

// Td translates a message by ID with template data.
func Td(msgID string, data map[string]any) string {
	if localizer == nil {
		return msgID
	}
	s, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    msgID,
		TemplateData: data,
	})
	if err != nil {
		return msgID
	}
	return s
}
