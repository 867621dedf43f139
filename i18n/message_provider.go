package i18n

import "golang.org/x/text/language"

// BundleMessageProvider implements MessageProvider using a bundle and a fixed language.
// Keys missing from the language fall back to the bundle's default language, then to the key itself.
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider creates a new provider rendering messages from bundle in lang
func NewBundleMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
		lang:   lang,
	}
}

// GetMessage returns the message for the given key
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}
	if msg, ok := p.bundle.message(p.lang, key); ok {
		return msg
	}

	return key
}

// Language returns the language messages are rendered in
func (p *BundleMessageProvider) Language() language.Tag {
	return p.lang
}
