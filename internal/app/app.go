package app

import (
	"context"
	"io"

	"cityboard/internal/loader"
	"cityboard/internal/view/htmlview"
	"cityboard/internal/view/termview"
)

// RenderPage runs one load cycle into a fresh HTML page and writes it to w.
// The page is written whatever the outcome; the error only reports write
// failures.
func (w *Wire) RenderPage(ctx context.Context, out io.Writer) (loader.Result, error) {
	page := htmlview.NewPage(w.Labels)
	res := w.HTML.Run(ctx, page.Regions())
	return res, page.Render(out)
}

// ShowTerminal runs one load cycle into a terminal screen and prints it to out.
func (w *Wire) ShowTerminal(ctx context.Context, out io.Writer) (loader.Result, error) {
	screen := termview.NewScreen(w.Labels)
	res := w.Terminal.Run(ctx, screen.Regions())
	return res, screen.Print(out)
}
