package locale

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. They double as the format strings looked up in the catalog.
const (
	keyTerritories = "%d territories"
	keyHouses      = "%d houses"
	keyTotal       = "Total: %d"
	keyNoBuildings = "No building data"
	keyNoCities    = "No cities found"
	keyPrint       = "Print"
	keyLoading     = "Loading..."
	keyLoadError   = "Could not load cities"
	keyTitle       = "Cities"
)

// Supported lists the languages with a full label set; the first is the
// fallback.
//
//nolint:gochecknoglobals // fixed table shared by Match and the catalog
var Supported = []language.Tag{language.French, language.English}

//nolint:gochecknoglobals // built once, read-only afterwards
var (
	cat     = mustCatalog()
	matcher = language.NewMatcher(Supported)
)

// exactlyOne pluralises every count except 1. French CLDR rules treat 0 as
// singular, which the cards must not do.
func exactlyOne(one, other string) catalog.Message {
	return plural.Selectf(1, "%d", "=1", one, "other", other)
}

func mustCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.French))
	set := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(err)
		}
	}
	str := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}

	fr := language.French
	set(fr, keyTerritories, exactlyOne("%d territoire", "%d territoires"))
	str(fr, keyHouses, "%d maisons")
	str(fr, keyTotal, "Total: %d")
	str(fr, keyNoBuildings, "Pas de données de bâtiments")
	str(fr, keyNoCities, "Aucune ville trouvée")
	str(fr, keyPrint, "Imprimer")
	str(fr, keyLoading, "Chargement...")
	str(fr, keyLoadError, "Erreur lors du chargement des villes")
	str(fr, keyTitle, "Villes")

	en := language.English
	set(en, keyTerritories, exactlyOne("%d territory", "%d territories"))
	str(en, keyHouses, "%d houses")
	str(en, keyTotal, "Total: %d")
	str(en, keyNoBuildings, "No building data")
	str(en, keyNoCities, "No cities found")
	str(en, keyPrint, "Print")
	str(en, keyLoading, "Loading...")
	str(en, keyLoadError, "Could not load cities")
	str(en, keyTitle, "Cities")

	return b
}

// Match returns the supported language closest to the BCP 47 tag s. Empty or
// unparsable input yields the fallback.
func Match(s string) language.Tag {
	if s == "" {
		return Supported[0]
	}
	t, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Labels produces the user-visible strings of the cities views.
type Labels struct {
	tag language.Tag
	p   *message.Printer
}

// New returns labels for the supported language closest to tag.
func New(tag string) *Labels {
	t := Match(tag)
	return &Labels{tag: t, p: message.NewPrinter(t, message.Catalog(cat))}
}

// Tag is the language the labels are printed in.
func (l *Labels) Tag() language.Tag { return l.tag }

// Territories is the territory count label, plural unless n is exactly 1.
func (l *Labels) Territories(n int) string { return l.p.Sprintf(keyTerritories, n) }

func (l *Labels) Houses(n int) string { return l.p.Sprintf(keyHouses, n) }

func (l *Labels) Total(n int) string { return l.p.Sprintf(keyTotal, n) }

func (l *Labels) NoBuildings() string { return l.p.Sprintf(keyNoBuildings) }

func (l *Labels) NoCities() string { return l.p.Sprintf(keyNoCities) }

func (l *Labels) Print() string { return l.p.Sprintf(keyPrint) }

func (l *Labels) Loading() string { return l.p.Sprintf(keyLoading) }

func (l *Labels) LoadError() string { return l.p.Sprintf(keyLoadError) }

func (l *Labels) Title() string { return l.p.Sprintf(keyTitle) }
