// Command citystub runs an in-memory stand-in for the territory backend,
// used with cityboard during development and tests.
//
// HTTP API
//
//	GET /territories/cities
//	    Return the current listing as { "cities": [...] }. With --fail-status
//	    every request is answered with that status instead.
//
//	PUT /territories/cities
//	    Replace the listing with the JSON body.
//
// Behaviour
//
//   - The listing starts from --fixture (YAML or JSON) or empty.
//   - All state is held in memory and lost on process exit.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :5000.
package main
