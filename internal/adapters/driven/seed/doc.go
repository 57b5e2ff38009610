// Package seed provides the documents used to populate an empty table.
//
// A seed file holds a list of document objects in JSON or YAML; the format is
// chosen by file extension. A seed directory contributes one document per
// Markdown, text or HTML file. Without a path, the built-in starter documents
// are used.
package seed
