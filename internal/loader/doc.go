// Package loader implements the cities load cycle.
//
// A cycle moves a view through Idle → Loading → {Success, Empty, Error}:
//
//   - Begin shows the loading indicator, hides the error indicator and clears
//     the cards, before any request is made.
//   - Fetch issues exactly one request and classifies the outcome. A parsed
//     listing with cities is Success, a parsed listing without cities is
//     Empty, anything else is Error.
//   - Apply hides the loading indicator and then renders one card per city
//     (Success), the no-cities placeholder (Empty), or shows the error
//     indicator with the cards left empty (Error).
//
// Fetch and Apply are separate so the outcome can be tested without a view.
// There is no retry; a new cycle needs a new Run.
package loader
