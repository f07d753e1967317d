package domain

import (
	interfaces "cityboard/internal/domain/interfaces"
	types "cityboard/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CityName       = types.CityName
	CityStats      = types.CityStats
	City           = types.City
	CitiesResponse = types.CitiesResponse
	Card           = types.Card
	Buildings      = types.Buildings
	Fragment       = types.Fragment
	LoadState      = types.LoadState
	FailureKind    = types.FailureKind
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CitiesClient = interfaces.CitiesClient
	Indicator    = interfaces.Indicator
	Container    = interfaces.Container
	Renderer     = interfaces.Renderer
)

// UnknownCityName is the placeholder name of an unassigned city.
const UnknownCityName = types.UnknownCityName

// MaxCount bounds building and territory counts.
const MaxCount = types.MaxCount

// Load-cycle states.
const (
	StateIdle    = types.StateIdle
	StateLoading = types.StateLoading
	StateSuccess = types.StateSuccess
	StateEmpty   = types.StateEmpty
	StateError   = types.StateError
)

// Failure kinds of a load cycle.
const (
	NoFailure      = types.NoFailure
	NetworkFailure = types.NetworkFailure
	HTTPError      = types.HTTPError
	ParseFailure   = types.ParseFailure
)

