// Package mcp wires the dynamic converter registry into a Fluxor workflow
// engine and exposes the resulting actions as MCP tools. Tool-call arguments
// are coerced by the binding package before an action runs, so clients may
// send "true" or "42" where the schema asks for a boolean or a number.
package mcp
