// Package termview renders the cities listing for a terminal with lipgloss:
// one rounded box per city with a textual house-share bar.
package termview
