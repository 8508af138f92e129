// Package locale provides translated names and descriptions for transition
// variants.
package locale

import (
	"embed"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message IDs for table headings.
const (
	HeaderVariant     = "HeaderVariant"
	HeaderPanels      = "HeaderPanels"
	HeaderProfiles    = "HeaderProfiles"
	HeaderDescription = "HeaderDescription"
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := messageFS.ReadDir("messages")
		if err != nil {
			bundleErr = err
			return
		}
		for _, e := range entries {
			if _, err := b.LoadMessageFileFS(messageFS, "messages/"+e.Name()); err != nil {
				bundleErr = err
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Localizer looks up messages for one language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns a Localizer for lang, a BCP 47 tag such as "es" or "en-US".
// Unknown or unsupported languages fall back to English.
func New(lang string) (*Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if parsed, err := language.Parse(lang); err == nil {
		supported := b.LanguageTags()
		if _, i, conf := language.NewMatcher(supported).Match(parsed); conf != language.No {
			tag = supported[i]
		}
	}

	return &Localizer{
		tag:       tag,
		localizer: i18n.NewLocalizer(b, tag.String()),
	}, nil
}

// Languages returns the tags that have message files.
func Languages() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	return b.LanguageTags()
}

// Tag returns the language messages are served in.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Message returns the text for id, or id itself if there is none.
func (l *Localizer) Message(id string) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || text == "" {
		return id
	}
	return text
}

// VariantLabel returns the display name of v. Unknown variants are
// returned as is.
func (l *Localizer) VariantLabel(v transition.Variant) string {
	return l.variantMessage(v, "Label")
}

// VariantDescription returns a one-line description of v, or an empty
// string for unknown variants.
func (l *Localizer) VariantDescription(v transition.Variant) string {
	if !v.Known() {
		return ""
	}
	return l.variantMessage(v, "Description")
}

func (l *Localizer) variantMessage(v transition.Variant, suffix string) string {
	if !v.Known() {
		return string(v)
	}
	name := string(v)
	id := "Variant" + strings.ToUpper(name[:1]) + name[1:] + suffix
	return l.Message(id)
}
