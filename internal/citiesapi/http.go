package citiesapi

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"cityboard/internal/digest"
	"cityboard/internal/domain"
)

// DefaultPath is where the territory backend lists cities.
const DefaultPath = "/territories/cities"

// HTTP fetches the cities listing from the territory backend.
type HTTP struct {
	Base string
	Path string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil client means http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), Path: DefaultPath, HTTP: client}
}

var _ domain.CitiesClient = (*HTTP)(nil)

// FetchCities issues a single GET for the listing. There is no retry; any
// failure is returned as an *Error.
func (c *HTTP) FetchCities(ctx context.Context) (domain.CitiesResponse, error) {
	u := c.Base + c.Path
	body, err := c.get(ctx, u)
	if err != nil {
		return domain.CitiesResponse{}, err
	}

	sum := digest.Payload(body)
	out, err := decodeCities(body)
	if err != nil {
		return domain.CitiesResponse{}, &Error{
			Kind:   domain.ParseFailure,
			Method: http.MethodGet,
			URL:    u,
			Digest: sum,
			Err:    err,
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("url", u).
		Str("digest", sum).
		Int("cities", len(out.Cities)).
		Msg("cities fetched")
	return out, nil
}

func (c *HTTP) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &Error{Kind: domain.NetworkFailure, Method: http.MethodGet, URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Kind: domain.NetworkFailure, Method: http.MethodGet, URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, &Error{Kind: domain.HTTPError, Method: http.MethodGet, URL: u, Status: resp.StatusCode}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: domain.NetworkFailure, Method: http.MethodGet, URL: u, Err: err}
	}
	return b, nil
}
