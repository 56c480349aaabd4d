// Package binding coerces MCP tool-call arguments into concrete values using
// the dynamic converter registry. The tool input schema supplies the type hint
// for every argument; the call request travels to converters as a *Context.
package binding
