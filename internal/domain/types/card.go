package types

// Buildings is the building-statistics block of a card. It only exists when
// the city has at least one building.
type Buildings struct {
	Houses  int
	Total   int
	Percent int // share of houses, 0..100
}

// Card is the render-ready summary of one city.
type Card struct {
	Name        CityName
	Muted       bool
	Territories int
	Buildings   *Buildings // nil: no building data
	PrintURL    string
}

// Fragment is one rendered piece of output in the target markup of a view.
// Its content is already escaped for that markup.
type Fragment string
