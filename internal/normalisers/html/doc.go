// Package html provides a Normaliser implementation for HTML documents.
// It extracts readable text, stripping tags, scripts and styles and
// decoding entities.
package html
