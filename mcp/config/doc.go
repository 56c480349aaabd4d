// Package config defines the YAML/JSON configuration of the dynamic MCP
// service: server options, exposed built-in actions, type aliases and the
// time location used by date converters.
package config
