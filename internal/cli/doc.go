// Package cli defines the Cobra command tree for the skeleton CLI. Each file
// in this package registers one top-level command (create, components,
// check, inspect, version) with the root command. Commands delegate to the
// dialog and packager packages and only handle flags, I/O formatting and
// user interaction.
package cli
