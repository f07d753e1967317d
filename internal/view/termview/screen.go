package termview

import (
	"fmt"
	"io"

	"cityboard/internal/domain"
	"cityboard/internal/locale"
)

// flag is an indicator region on a Screen.
type flag struct{ visible bool }

func (f *flag) Show() { f.visible = true }
func (f *flag) Hide() { f.visible = false }

type content struct{ fragments []domain.Fragment }

func (c *content) Clear() { c.fragments = nil }

func (c *content) Replace(fragments ...domain.Fragment) {
	c.fragments = append([]domain.Fragment(nil), fragments...)
}

// Screen collects the regions of a terminal cities view and prints them once
// the load cycle is over.
type Screen struct {
	loading flag
	err     flag
	content content

	labels *locale.Labels
}

// NewScreen returns an idle screen labelled with l.
func NewScreen(l *locale.Labels) *Screen { return &Screen{labels: l} }

// Regions exposes the screen's regions to a loader.
func (s *Screen) Regions() domain.Regions {
	return domain.Regions{Loading: &s.loading, Error: &s.err, Content: &s.content}
}

// Print writes the visible regions to w, one card per block.
func (s *Screen) Print(w io.Writer) error {
	if s.loading.visible {
		if _, err := fmt.Fprintln(w, s.labels.Loading()); err != nil {
			return err
		}
	}
	if s.err.visible {
		if _, err := fmt.Fprintln(w, s.labels.LoadError()); err != nil {
			return err
		}
	}
	for _, f := range s.content.fragments {
		if _, err := fmt.Fprintln(w, string(f)); err != nil {
			return err
		}
	}
	return nil
}
