// Package conversion derives MCP tool schemas from Fluxor action signatures.
package conversion
