package types

// CityName is the display name of a city as reported by the backend.
type CityName string

// String returns the string form of the city name.
func (n CityName) String() string { return string(n) }

// UnknownCityName is the backend's sentinel for territories whose city could
// not be resolved. It is rendered muted.
const UnknownCityName CityName = "Ville inconnue"

// IsUnknown reports whether n is the unknown-city sentinel.
func (n CityName) IsUnknown() bool { return n == UnknownCityName }
