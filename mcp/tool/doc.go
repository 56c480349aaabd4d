// Package tool defines canonical MCP tool names for Fluxor action methods.
// A tool name joins the service (slashes replaced by underscores) and the
// method with a dash, e.g. dynamic-convert or system_exec-execute.
package tool
