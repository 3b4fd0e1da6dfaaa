package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	c := Default()

	assert.Equal(t, "English", c.Resolve("en"))
	assert.Equal(t, "Spanish", c.Resolve("ES"))
	assert.Equal(t, "Hindi", c.Resolve(" hi "))
	// unknown values pass through
	assert.Equal(t, "Tamil", c.Resolve("Tamil"))
	assert.Equal(t, "", c.Resolve(""))
}

func TestMatch(t *testing.T) {
	c := Default()

	cases := map[string]string{
		"":                         "en",
		"es-MX,es;q=0.9,en;q=0.8":  "es",
		"hi-IN":                    "hi",
		"fr-FR,fr;q=0.9":           "en",
		"de;q=0.9, es;q=0.5":       "es",
		"this is not a header;;;=": "en",
	}
	for header, want := range cases {
		assert.Equal(t, want, c.Match(header), header)
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	c := Default()

	assert.Equal(t, "Algo salió mal al contactar con la IA. Por favor, inténtalo de nuevo.", c.T("es", "errors.try_again", nil))
	// hi has no file_too_large message
	assert.Equal(t, "File too large: the limit is 1024 bytes.", c.T("hi", "errors.file_too_large", map[string]string{"limit": "1024"}))
	assert.Equal(t, "Something went wrong while contacting the AI. Please try again.", c.T("xx", "errors.try_again", nil))
	assert.Equal(t, "errors.nope", c.T("en", "errors.nope", nil))
	// a branch is not a message
	assert.Equal(t, "errors", c.T("en", "errors", nil))
}

func TestLoad(t *testing.T) {
	c, err := Load([]byte("en:\n  name: English\nfr:\n  name: French\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, c.Codes())
	assert.Equal(t, "French", c.Resolve("fr"))
	assert.True(t, c.Known("FR"))

	_, err = Load([]byte("fr:\n  name: French\n"))
	assert.Error(t, err)

	_, err = Load([]byte("en: [unclosed"))
	assert.Error(t, err)
}
