package app

import (
	"net/http"

	"cityboard/internal/cards"
	"cityboard/internal/citiesapi"
	"cityboard/internal/config"
	"cityboard/internal/loader"
	"cityboard/internal/locale"
	"cityboard/internal/view/htmlview"
	"cityboard/internal/view/termview"
)

// Wire bundles the client, labels and loaders for the commands.
type Wire struct {
	Config   config.Config
	Labels   *locale.Labels
	HTML     *loader.Loader
	Terminal *loader.Loader
}

// NewWire constructs the dependency graph from cfg. A nil httpClient gets a
// client without timeout: a load cycle waits for the transport to settle.
func NewWire(cfg config.Config, httpClient *http.Client) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	client := citiesapi.NewHTTP(cfg.Endpoint, httpClient)
	client.Path = cfg.CitiesPath

	labels := locale.New(cfg.Locale)
	opts := cards.Options{PrintPrefix: cfg.PrintPrefix}

	return &Wire{
		Config:   cfg,
		Labels:   labels,
		HTML:     loader.New(client, htmlview.NewRenderer(labels), opts),
		Terminal: loader.New(client, termview.NewRenderer(labels), opts),
	}, nil
}
