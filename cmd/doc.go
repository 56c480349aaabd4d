// Package cmd implements the sub-commands of the fluxor-dynamic command-line
// interface. Each file registers a single sub-command (convert, types, exec,
// serve, …); configuration loading and service initialisation shared between
// commands live in shared.go.
package cmd
