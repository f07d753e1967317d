// Package config loads cityboard settings.
//
// Precedence, lowest first: built-in defaults, the YAML file given with
// --config, CITYBOARD_* environment variables, then command-line flags (applied
// by the commands package).
package config
