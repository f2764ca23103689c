// Package app wires application dependencies for the CLI.
//
// It resolves the runtime configuration (flags, optional config file,
// environment overrides), builds the concrete store and services, and
// exposes them via the Wire struct for commands to use.
package app
