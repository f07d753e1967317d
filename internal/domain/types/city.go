package types

// CityStats aggregates the building counts of all territories in a city.
type CityStats struct {
	Houses      int `json:"houses" yaml:"houses"`
	Apartments  int `json:"apartments" yaml:"apartments"`
	Territories int `json:"territories" yaml:"territories"`
}

// MaxCount bounds every count of a decoded listing. Above it the backend's
// numbers are no longer exact integers.
const MaxCount = 1 << 53

// TotalBuildings is the number of houses plus apartments, exact while both are
// at most MaxCount.
func (s CityStats) TotalBuildings() int { return s.Houses + s.Apartments }

// City is one entry of the cities listing.
type City struct {
	Name  CityName  `json:"name" yaml:"name"`
	Stats CityStats `json:"stats" yaml:"stats"`
}

// CitiesResponse is the body of GET /territories/cities. Order is display order.
type CitiesResponse struct {
	Cities []City `json:"cities" yaml:"cities"`
}
