// Package dynamicaction exposes the dynamic converter registry as a Fluxor
// action service so that workflows and MCP tools can convert values by type
// name.
package dynamicaction
