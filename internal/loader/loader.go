package loader

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"cityboard/internal/cards"
	"cityboard/internal/citiesapi"
	"cityboard/internal/domain"
)

// Result is the outcome of one load cycle.
type Result struct {
	State  domain.LoadState
	Cities []domain.City      // Success only
	Kind   domain.FailureKind // Error only
	Err    error              // Error only
}

// Loader runs load cycles: fetch the listing, then drive a view's regions
// into the matching terminal state.
type Loader struct {
	client   domain.CitiesClient
	renderer domain.Renderer
	opts     cards.Options
}

// New returns a Loader fetching with client and rendering with renderer.
func New(client domain.CitiesClient, renderer domain.Renderer, opts cards.Options) *Loader {
	return &Loader{client: client, renderer: renderer, opts: opts}
}

// Fetch performs the request and classifies the response, without touching
// any view.
func (l *Loader) Fetch(ctx context.Context) Result {
	resp, err := l.client.FetchCities(ctx)
	if err != nil {
		return Result{State: domain.StateError, Kind: citiesapi.KindOf(err), Err: err}
	}
	if len(resp.Cities) == 0 {
		return Result{State: domain.StateEmpty}
	}
	return Result{State: domain.StateSuccess, Cities: resp.Cities}
}

// Apply moves regions from Loading into the terminal state of res. On error
// the content is left as Begin cleared it.
func (l *Loader) Apply(regions domain.Regions, res Result) {
	regions.Loading.Hide()
	switch res.State {
	case domain.StateSuccess:
		cs := cards.BuildAll(res.Cities, l.opts)
		frags := make([]domain.Fragment, 0, len(cs))
		for _, c := range cs {
			frags = append(frags, l.renderer.RenderCard(c))
		}
		regions.Content.Replace(frags...)
	case domain.StateEmpty:
		regions.Content.Replace(l.renderer.RenderNoCities())
	default:
		regions.Error.Show()
	}
}

// Begin enters the Loading state: loading shown, error hidden, content
// cleared. It must run before the request is issued so stale cards never
// show next to a new load.
func Begin(regions domain.Regions) {
	regions.Loading.Show()
	regions.Error.Hide()
	regions.Content.Clear()
}

// Run performs one complete load cycle against regions. Failures are logged
// once, with their kind, and end in the error state; Run itself never fails.
func (l *Loader) Run(ctx context.Context, regions domain.Regions) Result {
	logger := zerolog.Ctx(ctx).With().Str("load_id", ulid.Make().String()).Logger()
	ctx = logger.WithContext(ctx)

	Begin(regions)
	res := l.Fetch(ctx)
	l.Apply(regions, res)

	if res.State == domain.StateError {
		logFailure(&logger, res)
	} else {
		logger.Debug().
			Str("state", res.State.String()).
			Int("cities", len(res.Cities)).
			Msg("cities loaded")
	}
	return res
}

func logFailure(logger *zerolog.Logger, res Result) {
	ev := logger.Error().Err(res.Err).Str("kind", res.Kind.String())
	var apiErr *citiesapi.Error
	if errors.As(res.Err, &apiErr) {
		ev = ev.Str("url", apiErr.URL)
		if apiErr.Status != 0 {
			ev = ev.Int("status", apiErr.Status)
		}
		if apiErr.Digest != "" {
			ev = ev.Str("digest", apiErr.Digest)
		}
	}
	ev.Msg("loading cities failed")
}
