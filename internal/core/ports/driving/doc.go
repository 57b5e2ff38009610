// Package driving defines the interfaces that external actors use to drive the core.
// The CLI, HTTP API and MCP server all depend on these.
package driving
