package cards

import (
	"math/bits"
	"net/url"

	"cityboard/internal/domain"
)

// DefaultPrintPrefix is the route a card's print control navigates under.
const DefaultPrintPrefix = "/print/"

// Options tune card construction.
type Options struct {
	PrintPrefix string // default DefaultPrintPrefix
}

// HousePercent returns the share of houses among all buildings, rounded half
// up to an integer in [0, 100]. ok is false when there are no buildings (or a
// count is negative), in which case no division takes place.
func HousePercent(houses, apartments int) (percent int, ok bool) {
	if houses < 0 || apartments < 0 {
		return 0, false
	}
	h, total := uint64(houses), uint64(houses)+uint64(apartments)
	if total == 0 {
		return 0, false
	}
	// 100*h/total = q + r/total, with 100*h held in 128 bits. hi < total
	// because h <= total.
	hi, lo := bits.Mul64(100, h)
	q, r := bits.Div64(hi, lo, total)
	if r >= total-r {
		q++
	}
	return int(q), true
}

// PrintPath is the navigation target of a city's print control. The name is
// escaped as a single path segment.
func PrintPath(prefix string, name domain.CityName) string {
	if prefix == "" {
		prefix = DefaultPrintPrefix
	}
	return prefix + url.PathEscape(string(name))
}

// Build maps one city to its card.
func Build(city domain.City, opts Options) domain.Card {
	c := domain.Card{
		Name:        city.Name,
		Muted:       city.Name.IsUnknown(),
		Territories: city.Stats.Territories,
		PrintURL:    PrintPath(opts.PrintPrefix, city.Name),
	}
	if pct, ok := HousePercent(city.Stats.Houses, city.Stats.Apartments); ok {
		c.Buildings = &domain.Buildings{
			Houses:  city.Stats.Houses,
			Total:   city.Stats.TotalBuildings(),
			Percent: pct,
		}
	}
	return c
}

// BuildAll maps cities to cards, one per city, in input order.
func BuildAll(cities []domain.City, opts Options) []domain.Card {
	out := make([]domain.Card, 0, len(cities))
	for _, c := range cities {
		out = append(out, Build(c, opts))
	}
	return out
}
