package domain

// Regions are the three independently addressable parts of a cities view:
// a loading indicator, an error indicator and the cards container.
type Regions struct {
	Loading Indicator
	Error   Indicator
	Content Container
}
