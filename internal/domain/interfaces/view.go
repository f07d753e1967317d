package interfaces

import domaintypes "cityboard/internal/domain/types"

// Indicator is a region that is either visible or hidden.
type Indicator interface {
	Show()
	Hide()
}

// Container is the region holding rendered cards.
type Container interface {
	Clear()
	Replace(fragments ...domaintypes.Fragment)
}

// Renderer turns card models into fragments for one kind of view.
type Renderer interface {
	RenderCard(card domaintypes.Card) domaintypes.Fragment
	RenderNoCities() domaintypes.Fragment
}
