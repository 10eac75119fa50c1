package internal

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
)

// InitLang loads the embedded message files and selects lang, falling back to English.
func InitLang(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	loadLocales(bundle, localeFS)
	localizer = i18n.NewLocalizer(bundle, lang, "en")
}

// loadLocales parses every file under locales/ in fsys into b. Failures are
// logged; untranslated messages then fall back to their IDs.
func loadLocales(b *i18n.Bundle, fsys fs.FS) {
	files, err := fs.ReadDir(fsys, "locales")
	if err != nil {
		Warnf("locales: %v", err)
		return
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := fs.ReadFile(fsys, "locales/"+f.Name())
		if err != nil {
			Warnf("locale %s: %v", f.Name(), err)
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			Warnf("locale %s: %v", f.Name(), err)
		}
	}
}

// T translates messageID, filling placeholders from data (may be nil).
// Unknown IDs come back unchanged.
func T(messageID string, data map[string]any) string {
	if localizer == nil {
		InitLang("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		return messageID
	}
	return msg
}
