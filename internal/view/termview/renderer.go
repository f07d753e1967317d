package termview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cityboard/internal/domain"
	"cityboard/internal/locale"
)

const (
	cardWidth      = 44
	barWidth       = 20
	barFilledChar  = "█"
	barEmptyChar   = "░"
	maxBarPercent  = 100
	nameColor      = lipgloss.Color("15")
	mutedColor     = lipgloss.Color("245")
	barFilledColor = lipgloss.Color("34")
	barEmptyColor  = lipgloss.Color("240")
	borderColor    = lipgloss.Color("63")
)

// Renderer renders cards as boxed terminal blocks.
type Renderer struct {
	labels *locale.Labels
}

// NewRenderer returns a Renderer printing labels with l.
func NewRenderer(l *locale.Labels) *Renderer { return &Renderer{labels: l} }

var _ domain.Renderer = (*Renderer)(nil)

// RenderCard renders one city card.
func (r *Renderer) RenderCard(c domain.Card) domain.Fragment {
	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(nameColor)
	if c.Muted {
		nameStyle = lipgloss.NewStyle().Faint(true).Foreground(mutedColor)
	}
	countStyle := lipgloss.NewStyle().Foreground(mutedColor)

	var b strings.Builder
	b.WriteString(nameStyle.Render(sanitize(c.Name.String())))
	b.WriteString("  ")
	b.WriteString(countStyle.Render(r.labels.Territories(c.Territories)))
	b.WriteString("\n")

	if bs := c.Buildings; bs != nil {
		b.WriteString(r.labels.Houses(bs.Houses))
		b.WriteString("\n")
		b.WriteString(progressBar(bs.Percent, barWidth))
		b.WriteString(" ")
		b.WriteString(strconv.Itoa(bs.Percent) + "%")
		b.WriteString("\n")
		b.WriteString(countStyle.Render(r.labels.Total(bs.Total)))
	} else {
		b.WriteString(countStyle.Render(r.labels.NoBuildings()))
	}
	b.WriteString("\n")
	b.WriteString(countStyle.Render(r.labels.Print() + ": " + c.PrintURL))

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth)
	return domain.Fragment(box.Render(b.String()))
}

// RenderNoCities renders the placeholder shown when the listing is empty.
func (r *Renderer) RenderNoCities() domain.Fragment {
	return domain.Fragment(lipgloss.NewStyle().Faint(true).Render(r.labels.NoCities()))
}

// progressBar renders a horizontal bar whose filled part is percent of width.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > maxBarPercent {
		percent = maxBarPercent
	}
	filled := percent * width / maxBarPercent
	filledStyle := lipgloss.NewStyle().Foreground(barFilledColor)
	emptyStyle := lipgloss.NewStyle().Foreground(barEmptyColor)
	return filledStyle.Render(strings.Repeat(barFilledChar, filled)) +
		emptyStyle.Render(strings.Repeat(barEmptyChar, width-filled))
}

// sanitize drops control characters so a backend name cannot move the
// cursor or inject escape sequences.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, s)
}
