package citiesapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityboard/internal/citiesapi"
	"cityboard/internal/domain"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != citiesapi.DefaultPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchCities_OK(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"cities":[
		{"name":"Paris","stats":{"houses":3,"apartments":1,"territories":2}},
		{"name":"Ville inconnue","stats":{"houses":0,"apartments":0,"territories":1}}
	]}`)

	got, err := citiesapi.NewHTTP(srv.URL+"/", srv.Client()).FetchCities(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Cities, 2)

	assert.Equal(t, domain.CityName("Paris"), got.Cities[0].Name)
	assert.Equal(t, domain.CityStats{Houses: 3, Apartments: 1, Territories: 2}, got.Cities[0].Stats)
	assert.True(t, got.Cities[1].Name.IsUnknown())
}

func TestFetchCities_EmptyOrAbsent(t *testing.T) {
	for _, body := range []string{`{"cities":[]}`, `{}`, `{"cities":null}`} {
		t.Run(body, func(t *testing.T) {
			srv := serve(t, http.StatusOK, body)
			got, err := citiesapi.NewHTTP(srv.URL, srv.Client()).FetchCities(context.Background())
			require.NoError(t, err)
			assert.Empty(t, got.Cities)
		})
	}
}

func TestFetchCities_HTTPStatus(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, `{"cities":[]}`)

	_, err := citiesapi.NewHTTP(srv.URL, srv.Client()).FetchCities(context.Background())
	require.Error(t, err)

	var apiErr *citiesapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.HTTPError, apiErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchCities_ParseFailures(t *testing.T) {
	cases := map[string]string{
		"not json":       `<html>oops</html>`,
		"empty body":     ``,
		"null":           `null`,
		"top-level list": `[]`,
		"cities object":  `{"cities":{}}`,
		"missing stats":  `{"cities":[{"name":"Lyon"}]}`,
		"missing name":   `{"cities":[{"stats":{"houses":1,"apartments":1,"territories":1}}]}`,
		"negative count": `{"cities":[{"name":"Lyon","stats":{"houses":-1,"apartments":1,"territories":1}}]}`,
		"fractional":     `{"cities":[{"name":"Lyon","stats":{"houses":1.5,"apartments":1,"territories":1}}]}`,
		"huge count":     `{"cities":[{"name":"Lyon","stats":{"houses":9000000000000000000,"apartments":1000000000000000000,"territories":1}}]}`,
		"above bound":    `{"cities":[{"name":"Lyon","stats":{"houses":1,"apartments":9007199254740993,"territories":1}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, body)
			_, err := citiesapi.NewHTTP(srv.URL, srv.Client()).FetchCities(context.Background())
			require.Error(t, err)

			var apiErr *citiesapi.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, domain.ParseFailure, apiErr.Kind)
			assert.NotEmpty(t, apiErr.Digest)
		})
	}
}

func TestFetchCities_CountAtBound(t *testing.T) {
	srv := serve(t, http.StatusOK, `{"cities":[{"name":"Lyon","stats":{"houses":9007199254740992,"apartments":9007199254740992,"territories":1}}]}`)

	got, err := citiesapi.NewHTTP(srv.URL, srv.Client()).FetchCities(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Cities, 1)
	assert.Equal(t, domain.MaxCount, got.Cities[0].Stats.Houses)
	assert.Equal(t, 2*domain.MaxCount, got.Cities[0].Stats.TotalBuildings())
}

func TestFetchCities_NetworkFailure(t *testing.T) {
	srv := serve(t, http.StatusOK, `{}`)
	base := srv.URL
	srv.Close()

	_, err := citiesapi.NewHTTP(base, nil).FetchCities(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.NetworkFailure, citiesapi.KindOf(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.NoFailure, citiesapi.KindOf(nil))
	assert.Equal(t, domain.NetworkFailure, citiesapi.KindOf(errors.New("boom")))
	assert.Equal(t, domain.ParseFailure, citiesapi.KindOf(&citiesapi.Error{Kind: domain.ParseFailure}))
}
