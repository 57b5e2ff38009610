// Package mcp provides an MCP (Model Context Protocol) server adapter for docspace.
// It lets AI assistants search and read the workspace documents.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrDocumentsUnavailable is returned by document tools when no document service is configured.
var ErrDocumentsUnavailable = errors.New("mcp: document service is not configured")

// ErrChatUnavailable is returned by the ask tool when no chat service is configured.
var ErrChatUnavailable = errors.New("mcp: chat service is not configured")
