package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cityboard/internal/domain/types"
)

func TestLoadState(t *testing.T) {
	tests := []struct {
		state    types.LoadState
		name     string
		terminal bool
	}{
		{types.StateIdle, "idle", false},
		{types.StateLoading, "loading", false},
		{types.StateSuccess, "success", true},
		{types.StateEmpty, "empty", true},
		{types.StateError, "error", true},
		{types.LoadState(99), "unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.Terminal())
		})
	}
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "none", types.NoFailure.String())
	assert.Equal(t, "network", types.NetworkFailure.String())
	assert.Equal(t, "http_status", types.HTTPError.String())
	assert.Equal(t, "parse", types.ParseFailure.String())
}

func TestCityStats_TotalBuildings(t *testing.T) {
	s := types.CityStats{Houses: types.MaxCount, Apartments: types.MaxCount}
	assert.Equal(t, 2*types.MaxCount, s.TotalBuildings())
}
