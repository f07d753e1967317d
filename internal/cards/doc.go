// Package cards computes the render-ready summary of a city: the house share
// of its buildings, whether the name is the unknown-city sentinel, and the
// print link. Everything here is pure; views decide the markup.
package cards
