package citiesapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"cityboard/internal/domain"
)

var errNullPayload = errors.New("payload is null")

type wireStats struct {
	Houses      int `json:"houses"`
	Apartments  int `json:"apartments"`
	Territories int `json:"territories"`
}

type wireCity struct {
	Name  *string    `json:"name"`
	Stats *wireStats `json:"stats"`
}

type wireResponse struct {
	Cities []wireCity `json:"cities"`
}

// decodeCities parses a cities payload. An absent or null "cities" member is
// an empty listing; a city without a name or stats, or with a negative
// count or one above domain.MaxCount, is malformed.
func decodeCities(body []byte) (domain.CitiesResponse, error) {
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return domain.CitiesResponse{}, errNullPayload
	}
	var w wireResponse
	if err := json.Unmarshal(body, &w); err != nil {
		return domain.CitiesResponse{}, err
	}

	out := domain.CitiesResponse{Cities: make([]domain.City, 0, len(w.Cities))}
	for i, c := range w.Cities {
		if c.Name == nil {
			return domain.CitiesResponse{}, fmt.Errorf("city %d: missing name", i)
		}
		if c.Stats == nil {
			return domain.CitiesResponse{}, fmt.Errorf("city %d (%q): missing stats", i, *c.Name)
		}
		s := c.Stats
		if s.Houses < 0 || s.Apartments < 0 || s.Territories < 0 {
			return domain.CitiesResponse{}, fmt.Errorf("city %d (%q): negative count", i, *c.Name)
		}
		if s.Houses > domain.MaxCount || s.Apartments > domain.MaxCount || s.Territories > domain.MaxCount {
			return domain.CitiesResponse{}, fmt.Errorf("city %d (%q): count above %d", i, *c.Name, domain.MaxCount)
		}
		out.Cities = append(out.Cities, domain.City{
			Name: domain.CityName(*c.Name),
			Stats: domain.CityStats{
				Houses:      s.Houses,
				Apartments:  s.Apartments,
				Territories: s.Territories,
			},
		})
	}
	return out, nil
}
