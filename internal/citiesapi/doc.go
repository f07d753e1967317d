// Package citiesapi provides an HTTP implementation of the
// domain.CitiesClient interface.
//
// The territory backend aggregates territories per city and serves the
// result as JSON at GET /territories/cities:
//
//	{ "cities": [ { "name": "...", "stats": { "houses": 0, "apartments": 0, "territories": 0 } } ] }
//
// Requests accept a context and are made exactly once. Failures are reported
// as *Error values carrying one of three kinds: the request could not
// complete (network), the backend answered with a non-2xx status, or the body
// did not match the expected shape (parse). Parse errors carry a digest of
// the offending body.
package citiesapi
