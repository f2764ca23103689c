// Package commands defines the embcalc CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - price           Price an order from stitch count, items and extras
//   - settings show   Print the current pricing rates
//   - settings set    Validate and save new pricing rates
//   - settings reset  Restore the default pricing rates
//
// # Implementation
//
// The root command builds the dependency graph (settings store, settings
// and quote services, logger) before any subcommand runs, so handlers share
// one app context. All currency formatting and show/hide presentation
// logic lives here; the services below deal in plain numbers only.
package commands
