// Package commands defines the cityboard CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - render   Fetch the cities once and write the HTML page (stdout or --out)
//   - show     Fetch the cities once and print terminal cards
//   - serve    Serve the cities page; every request is one load cycle
//
// # Implementation
//
// The root command loads the config (defaults, --config file, CITYBOARD_*
// environment, then flags), builds the zerolog logger and the dependency
// graph before any subcommand runs. render and show exit non-zero when the
// load cycle ends in the error state; the page or error notice is still
// written.
package commands
