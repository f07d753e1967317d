package htmlview

import (
	"bytes"
	"embed"
	"html/template"

	"cityboard/internal/domain"
	"cityboard/internal/locale"
)

//go:embed templates/*.html.tmpl
var templatesFS embed.FS

//nolint:gochecknoglobals // parsed once at init, read-only afterwards
var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html.tmpl"))

type buildingsData struct {
	HousesLabel string
	Percent     int
	TotalLabel  string
}

type cardData struct {
	Name             string
	Muted            bool
	TerritoryLabel   string
	Buildings        *buildingsData
	NoBuildingsLabel string
	PrintURL         string
	PrintLabel       string
}

// Renderer renders cards as HTML fragments. Text is escaped by html/template,
// so city names can never inject markup.
type Renderer struct {
	labels *locale.Labels
}

// NewRenderer returns a Renderer printing labels with l.
func NewRenderer(l *locale.Labels) *Renderer { return &Renderer{labels: l} }

var _ domain.Renderer = (*Renderer)(nil)

// RenderCard renders one city card.
func (r *Renderer) RenderCard(c domain.Card) domain.Fragment {
	data := cardData{
		Name:             c.Name.String(),
		Muted:            c.Muted,
		TerritoryLabel:   r.labels.Territories(c.Territories),
		NoBuildingsLabel: r.labels.NoBuildings(),
		PrintURL:         c.PrintURL,
		PrintLabel:       r.labels.Print(),
	}
	if b := c.Buildings; b != nil {
		data.Buildings = &buildingsData{
			HousesLabel: r.labels.Houses(b.Houses),
			Percent:     b.Percent,
			TotalLabel:  r.labels.Total(b.Total),
		}
	}
	return execute("card", data)
}

// RenderNoCities renders the placeholder shown when the listing is empty.
func (r *Renderer) RenderNoCities() domain.Fragment {
	return execute("no-cities", r.labels.NoCities())
}

// execute panics on failure: the templates are fixed and the data types are
// ours, so an error here is a programming error, not a runtime condition.
func execute(name string, data any) domain.Fragment {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(err)
	}
	return domain.Fragment(buf.String())
}
