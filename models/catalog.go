package models

// Locale is the guest-selected interface language.
type Locale string

const (
	LocaleEN Locale = "EN"
	LocaleDE Locale = "DE"
)

// Locales lists every language the catalog must ship translations for.
var Locales = []Locale{LocaleEN, LocaleDE}

// ParseLocale normalizes a raw locale string, falling back to German
// (the house default) for anything unknown.
func ParseLocale(raw string) Locale {
	switch Locale(raw) {
	case LocaleEN:
		return LocaleEN
	case LocaleDE:
		return LocaleDE
	default:
		return LocaleDE
	}
}

// LocalizedText holds one string per supported locale.
type LocalizedText struct {
	EN string `json:"EN"`
	DE string `json:"DE"`
}

// Get returns the variant for the given locale.
func (t LocalizedText) Get(loc Locale) string {
	if loc == LocaleEN {
		return t.EN
	}
	return t.DE
}

// Complete reports whether every supported locale has a non-empty variant.
func (t LocalizedText) Complete() bool {
	return t.EN != "" && t.DE != ""
}

// Service is a bookable guest-requested task (cleaning, towels, late
// checkout, repair).
type Service struct {
	ID    string        `json:"id"`
	Label LocalizedText `json:"label"`
	Price LocalizedText `json:"price"`
}

// Intent is a recognized guest-need category.
type Intent struct {
	ID       string        `json:"id"`
	Label    LocalizedText `json:"label"`
	Keywords []string      `json:"keywords"`
	Reply    LocalizedText `json:"reply"`
	// ServiceID binds the intent to a bookable service, if any.
	ServiceID string `json:"serviceId,omitempty"`
}

// MarkerPOI is a point of interest shown on map-bearing steps.
type MarkerPOI struct {
	ID       string         `json:"id"`
	Label    LocalizedText  `json:"label"`
	Address  LocalizedText  `json:"address"`
	Lat      float64        `json:"lat"`
	Lon      float64        `json:"lon"`
	Tone     string         `json:"tone"`
	Cuisine  *LocalizedText `json:"cuisine,omitempty"`
	Phone    string         `json:"phone,omitempty"`
	OrderURL string         `json:"orderUrl,omitempty"`
	SiteURL  string         `json:"siteUrl,omitempty"`
}

// Chip is a tappable prompt shortcut rendered under the chat input.
type Chip struct {
	ID     string        `json:"id"`
	Icon   string        `json:"icon"`
	Label  LocalizedText `json:"label"`
	Prompt LocalizedText `json:"prompt"`
}
