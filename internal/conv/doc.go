// Package conv holds small helpers shared by the action and MCP layers:
// pointer helpers and a best-effort JSON round-trip used to decode loosely
// typed action inputs into their request structs.
package conv
