package htmlview

import (
	"html/template"
	"io"

	"cityboard/internal/domain"
	"cityboard/internal/locale"
)

// Toggle is a region that is either shown or hidden (hidden regions carry the
// d-none class).
type Toggle struct{ Visible bool }

func (t *Toggle) Show() { t.Visible = true }
func (t *Toggle) Hide() { t.Visible = false }

// Cards is the cities container.
type Cards struct{ Fragments []domain.Fragment }

func (c *Cards) Clear() { c.Fragments = nil }

func (c *Cards) Replace(fragments ...domain.Fragment) {
	c.Fragments = append([]domain.Fragment(nil), fragments...)
}

// Page is a full cities document: the loading indicator, the error indicator
// and the cards container. A new page starts in the idle state with every
// region hidden or empty.
type Page struct {
	Loading Toggle
	Error   Toggle
	Content Cards

	labels *locale.Labels
}

// NewPage returns an idle page labelled with l.
func NewPage(l *locale.Labels) *Page { return &Page{labels: l} }

// Regions exposes the page's regions to a loader.
func (p *Page) Regions() domain.Regions {
	return domain.Regions{Loading: &p.Loading, Error: &p.Error, Content: &p.Content}
}

type pageData struct {
	Lang         string
	Title        string
	Loading      bool
	Error        bool
	LoadingLabel string
	ErrorLabel   string
	Content      []template.HTML
}

// Render writes the page as an HTML document.
func (p *Page) Render(w io.Writer) error {
	data := pageData{
		Lang:         p.labels.Tag().String(),
		Title:        p.labels.Title(),
		Loading:      p.Loading.Visible,
		Error:        p.Error.Visible,
		LoadingLabel: p.labels.Loading(),
		ErrorLabel:   p.labels.LoadError(),
		Content:      make([]template.HTML, 0, len(p.Content.Fragments)),
	}
	for _, f := range p.Content.Fragments {
		// Fragments come from Renderer and are already escaped.
		data.Content = append(data.Content, template.HTML(f)) //nolint:gosec // produced by html/template
	}
	return templates.ExecuteTemplate(w, "page", data)
}
