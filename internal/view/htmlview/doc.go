// Package htmlview renders the cities listing as HTML.
//
// Renderer produces one fragment per card (or the no-cities placeholder)
// from html/template definitions, so every piece of backend text is escaped
// as text. Page holds the three regions a loader drives (#loading, #error,
// #cities-container) and writes them out as a complete document.
package htmlview
