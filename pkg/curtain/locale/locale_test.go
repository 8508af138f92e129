package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

func TestEnglish(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, language.English, l.Tag())
	assert.Equal(t, "Multi block", l.VariantLabel(transition.VariantMultiBlock))
	assert.Equal(t, "Five strips fold up one after another.", l.VariantDescription(transition.VariantBlinds))
	assert.Equal(t, "Panels", l.Message(HeaderPanels))
}

func TestSpanish(t *testing.T) {
	l, err := New("es-MX")
	require.NoError(t, err)

	assert.Equal(t, language.Spanish, l.Tag())
	assert.Equal(t, "Persianas", l.VariantLabel(transition.VariantBlinds))
	assert.Equal(t, "Variante", l.Message(HeaderVariant))
}

func TestFallsBackToEnglish(t *testing.T) {
	for _, lang := range []string{"ja", "", "not a tag"} {
		l, err := New(lang)
		require.NoError(t, err)
		assert.Equal(t, language.English, l.Tag(), lang)
		assert.Equal(t, "Fade", l.VariantLabel(transition.VariantFade), lang)
	}
}

func TestEveryVariantIsTranslated(t *testing.T) {
	for _, tag := range Languages() {
		l, err := New(tag.String())
		require.NoError(t, err)

		for _, v := range transition.Variants() {
			name := string(v)
			assert.NotEqual(t, name, l.VariantLabel(v), "%s label for %s", tag, v)
			assert.NotEmpty(t, l.VariantDescription(v), "%s description for %s", tag, v)
		}
	}
	assert.Len(t, Languages(), 2)
}

func TestUnknownVariantAndMessage(t *testing.T) {
	l, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "wipe", l.VariantLabel("wipe"))
	assert.Empty(t, l.VariantDescription("wipe"))
	assert.Equal(t, "NoSuchMessage", l.Message("NoSuchMessage"))
}
