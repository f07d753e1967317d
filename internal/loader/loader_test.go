package loader_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityboard/internal/cards"
	"cityboard/internal/citiesapi"
	"cityboard/internal/domain"
	"cityboard/internal/loader"
)

type fakeClient struct {
	resp   domain.CitiesResponse
	err    error
	calls  int
	before func()
}

func (f *fakeClient) FetchCities(context.Context) (domain.CitiesResponse, error) {
	f.calls++
	if f.before != nil {
		f.before()
	}
	return f.resp, f.err
}

type fakeIndicator struct{ visible bool }

func (f *fakeIndicator) Show() { f.visible = true }
func (f *fakeIndicator) Hide() { f.visible = false }

type fakeContainer struct{ frags []domain.Fragment }

func (f *fakeContainer) Clear() { f.frags = nil }
func (f *fakeContainer) Replace(frags ...domain.Fragment) {
	f.frags = append([]domain.Fragment(nil), frags...)
}

type fakeView struct {
	loading, err fakeIndicator
	content      fakeContainer
}

func (v *fakeView) regions() domain.Regions {
	return domain.Regions{Loading: &v.loading, Error: &v.err, Content: &v.content}
}

type nameRenderer struct{}

func (nameRenderer) RenderCard(c domain.Card) domain.Fragment {
	return domain.Fragment("card:" + c.Name.String())
}
func (nameRenderer) RenderNoCities() domain.Fragment { return "no-cities" }

func staleView() *fakeView {
	v := &fakeView{}
	v.err.visible = true
	v.content.frags = []domain.Fragment{"card:stale"}
	return v
}

func TestRun_Success(t *testing.T) {
	client := &fakeClient{resp: domain.CitiesResponse{Cities: []domain.City{
		{Name: "Paris", Stats: domain.CityStats{Houses: 1}},
		{Name: "Lyon"},
	}}}
	v := staleView()

	res := loader.New(client, nameRenderer{}, cards.Options{}).Run(context.Background(), v.regions())

	assert.Equal(t, domain.StateSuccess, res.State)
	assert.True(t, res.State.Terminal())
	assert.Equal(t, 1, client.calls)
	assert.False(t, v.loading.visible)
	assert.False(t, v.err.visible)
	assert.Equal(t, []domain.Fragment{"card:Paris", "card:Lyon"}, v.content.frags)
}

func TestRun_Empty(t *testing.T) {
	for name, resp := range map[string]domain.CitiesResponse{
		"empty":  {Cities: []domain.City{}},
		"absent": {},
	} {
		t.Run(name, func(t *testing.T) {
			v := staleView()
			res := loader.New(&fakeClient{resp: resp}, nameRenderer{}, cards.Options{}).
				Run(context.Background(), v.regions())

			assert.Equal(t, domain.StateEmpty, res.State)
	assert.True(t, res.State.Terminal())
			assert.False(t, v.loading.visible)
			assert.False(t, v.err.visible)
			assert.Equal(t, []domain.Fragment{"no-cities"}, v.content.frags)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.FailureKind
	}{
		{"network", &citiesapi.Error{Kind: domain.NetworkFailure, Err: errors.New("refused")}, domain.NetworkFailure},
		{"status", &citiesapi.Error{Kind: domain.HTTPError, Status: 500}, domain.HTTPError},
		{"parse", &citiesapi.Error{Kind: domain.ParseFailure, Digest: "abc", Err: errors.New("bad")}, domain.ParseFailure},
		{"foreign", errors.New("boom"), domain.NetworkFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := staleView()
			res := loader.New(&fakeClient{err: tt.err}, nameRenderer{}, cards.Options{}).
				Run(context.Background(), v.regions())

			assert.Equal(t, domain.StateError, res.State)
	assert.True(t, res.State.Terminal())
			assert.Equal(t, tt.kind, res.Kind)
			assert.ErrorIs(t, res.Err, tt.err)
			assert.False(t, v.loading.visible)
			assert.True(t, v.err.visible)
			assert.Empty(t, v.content.frags)
		})
	}
}

func TestRun_EntersLoadingBeforeRequest(t *testing.T) {
	assert.Equal(t, domain.StateIdle, loader.Result{}.State)
	assert.False(t, domain.StateLoading.Terminal())

	v := staleView()
	client := &fakeClient{}
	client.before = func() {
		assert.True(t, v.loading.visible)
		assert.False(t, v.err.visible)
		assert.Empty(t, v.content.frags)
	}

	loader.New(client, nameRenderer{}, cards.Options{}).Run(context.Background(), v.regions())
	assert.Equal(t, 1, client.calls)
}

func TestRun_LogsFailureOnce(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())
	v := &fakeView{}

	loader.New(&fakeClient{err: &citiesapi.Error{Kind: domain.HTTPError, URL: "http://x/territories/cities", Status: 502}},
		nameRenderer{}, cards.Options{}).Run(ctx, v.regions())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "http_status", entry["kind"])
	assert.EqualValues(t, 502, entry["status"])
	assert.NotEmpty(t, entry["load_id"])
}

func TestFetch_DoesNotTouchView(t *testing.T) {
	l := loader.New(&fakeClient{resp: domain.CitiesResponse{Cities: []domain.City{{Name: "Nice"}}}},
		nameRenderer{}, cards.Options{})

	res := l.Fetch(context.Background())
	assert.Equal(t, domain.StateSuccess, res.State)
	require.Len(t, res.Cities, 1)
	assert.Equal(t, domain.NoFailure, res.Kind)
}

func TestApply_UsesPrintPrefix(t *testing.T) {
	var got []domain.Card
	r := recordingRenderer{cards: &got}
	v := &fakeView{}

	l := loader.New(&fakeClient{}, r, cards.Options{PrintPrefix: "/territories/print/"})
	l.Apply(v.regions(), loader.Result{State: domain.StateSuccess, Cities: []domain.City{{Name: "Le Havre"}}})

	require.Len(t, got, 1)
	assert.Equal(t, "/territories/print/Le%20Havre", got[0].PrintURL)
}

type recordingRenderer struct{ cards *[]domain.Card }

func (r recordingRenderer) RenderCard(c domain.Card) domain.Fragment {
	*r.cards = append(*r.cards, c)
	return ""
}
func (recordingRenderer) RenderNoCities() domain.Fragment { return "" }
