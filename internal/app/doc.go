// Package app wires application dependencies for the CLI.
//
// It builds the backend client, the labels and one loader per view from a
// config.Config, exposing them via the Wire struct for commands to use.
package app
