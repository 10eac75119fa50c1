package internal

import (
	"testing"
	"testing/fstest"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func TestTranslations(t *testing.T) {
	defer InitLang("en")

	InitLang("en")
	assert.Equal(t, "Text field cannot be empty!", T("error_empty_text", nil))
	assert.Equal(t, "Something went wrong! boom", T("error_generic", map[string]any{"Err": "boom"}))

	InitLang("cs")
	assert.Equal(t, "OK", T("selftest_passed", nil))
	assert.Equal(t, "a musí být nesoudělné s 36", T("error_invalid_key", map[string]any{"Mod": 36}))

	InitLang("de")
	assert.Equal(t, "PASSED", T("selftest_passed", nil), "falls back to English")
}

func TestTranslationUnknownID(t *testing.T) {
	assert.Equal(t, "no_such_message", T("no_such_message", nil))
}

func TestLoadLocalesWarns(t *testing.T) {
	newBundle := func() *i18n.Bundle {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
		return b
	}

	buf := withBufferLogger(t)
	loadLocales(newBundle(), fstest.MapFS{})
	assert.Contains(t, buf.String(), "locales")

	buf.Reset()
	loadLocales(newBundle(), fstest.MapFS{
		"locales/en.yaml": {Data: []byte("label_key: [unclosed\n")},
	})
	assert.Contains(t, buf.String(), "locale en.yaml")
}
